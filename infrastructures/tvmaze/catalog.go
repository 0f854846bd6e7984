package tvmaze

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/sobadon/epgd/domain/model/catalog"
	"github.com/sobadon/epgd/internal/errutil"
)

type tvmazeShow struct {
	ID     int      `json:"id"`
	Name   string   `json:"name"`
	Genres []string `json:"genres"`
}

type tvmazeSearchEntry struct {
	Show tvmazeShow `json:"show"`
}

type tvmazeSeason struct {
	Number int `json:"number"`
}

type tvmazeEpisode struct {
	Name   string `json:"name"`
	Season int    `json:"season"`
	Number int    `json:"number"`

	// YYYY-MM-DD
	Airdate string `json:"airdate"`

	// <p> 混じりの HTML
	Summary string `json:"summary"`
}

// GET して v にデコードする
// 接続エラー・タイムアウト・429 は retryWait 待って一度だけ引き直す
// 404 は errutil.ErrCatalogNotFound
func (c *client) doGet(ctx context.Context, endpoint string, queries url.Values, v interface{}) error {
	requestURL := c.baseURL + endpoint
	if len(queries) != 0 {
		requestURL += "?" + queries.Encode()
	}

	retried := false
	for {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
		if err != nil {
			return errors.Wrap(errutil.ErrInternal, err.Error())
		}

		res, err := c.httpClient.Do(req)
		if err != nil {
			if retried {
				return errors.Wrap(errutil.ErrHTTPRequest, err.Error())
			}
			log.Ctx(ctx).Warn().Msgf("retryable http error, sleeping %s (err = %v)", c.retryWait, err)
			time.Sleep(c.retryWait)
			retried = true
			continue
		}

		if res.StatusCode == http.StatusTooManyRequests {
			res.Body.Close()
			if retried {
				return errors.Wrapf(errutil.ErrCatalogRequestNotOK, "http status code is %d", res.StatusCode)
			}
			log.Ctx(ctx).Warn().Msgf("rate limited, sleeping %s", c.retryWait)
			time.Sleep(c.retryWait)
			retried = true
			continue
		}

		if res.StatusCode == http.StatusNotFound {
			res.Body.Close()
			return errors.Wrapf(errutil.ErrCatalogNotFound, "tvmaze %s", endpoint)
		}

		if res.StatusCode != 200 {
			res.Body.Close()
			return errors.Wrapf(errutil.ErrCatalogRequestNotOK, "http status code is %d", res.StatusCode)
		}

		err = json.NewDecoder(res.Body).Decode(v)
		res.Body.Close()
		if err != nil {
			return errors.Wrap(errutil.ErrJSONDecode, err.Error())
		}
		return nil
	}
}

func (c *client) FindByExternalID(ctx context.Context, externalID string) (*catalog.FindResult, error) {
	queries := url.Values{}
	queries.Set("imdb", externalID)

	var show tvmazeShow
	err := c.doGet(ctx, "/lookup/shows", queries, &show)
	if errors.Is(err, errutil.ErrCatalogNotFound) {
		return &catalog.FindResult{}, nil
	}
	if err != nil {
		return nil, err
	}

	return &catalog.FindResult{
		TVResults: []catalog.SearchResult{{ID: show.ID, Name: show.Name}},
	}, nil
}

func (c *client) SearchSeries(ctx context.Context, title string) ([]catalog.SearchResult, error) {
	queries := url.Values{}
	queries.Set("q", title)

	var entries []tvmazeSearchEntry
	err := c.doGet(ctx, "/search/shows", queries, &entries)
	if err != nil {
		return nil, err
	}

	var results []catalog.SearchResult
	for _, entry := range entries {
		results = append(results, catalog.SearchResult{ID: entry.Show.ID, Name: entry.Show.Name})
	}
	return results, nil
}

func (c *client) SearchMovie(_ context.Context, _ string) ([]catalog.SearchResult, error) {
	// tvmaze に映画はない
	return nil, nil
}

func (c *client) GetSeriesDetail(ctx context.Context, id int) (*catalog.Series, error) {
	var show tvmazeShow
	err := c.doGet(ctx, fmt.Sprintf("/shows/%d", id), url.Values{}, &show)
	if err != nil {
		return nil, err
	}

	var seasons []tvmazeSeason
	err = c.doGet(ctx, fmt.Sprintf("/shows/%d/seasons", id), url.Values{}, &seasons)
	if err != nil {
		return nil, err
	}

	series := &catalog.Series{
		ID:     show.ID,
		Name:   show.Name,
		Genres: show.Genres,
	}
	for _, season := range seasons {
		series.Seasons = append(series.Seasons, catalog.Season{SeasonNumber: season.Number})
	}
	return series, nil
}

func (c *client) GetSeasonEpisodes(ctx context.Context, id int, seasonNumber int) ([]catalog.Episode, error) {
	// tvmaze はシーズン単位ではなく全エピソードを一括で返す
	queries := url.Values{}
	queries.Set("specials", "1")

	var tvmazeEpisodes []tvmazeEpisode
	err := c.doGet(ctx, fmt.Sprintf("/shows/%d/episodes", id), queries, &tvmazeEpisodes)
	if err != nil {
		return nil, err
	}

	var episodes []catalog.Episode
	for _, ep := range tvmazeEpisodes {
		if ep.Season != seasonNumber {
			continue
		}
		episodes = append(episodes, catalog.Episode{
			Name:     ep.Name,
			Overview: stripTags(ep.Summary),
			Season:   ep.Season,
			Episode:  ep.Number,
			Airdate:  ep.Airdate,
		})
	}
	return episodes, nil
}

func (c *client) GetMovieDetail(_ context.Context, id int) (*catalog.Movie, error) {
	return nil, errors.Wrapf(errutil.ErrCatalogNotFound, "tvmaze has no movies (id = %d)", id)
}

// summary の <p> などを落とす
// タグの中身だけ残れば十分で、厳密な HTML パースはしない
func stripTags(s string) string {
	var b strings.Builder
	inTag := false
	for _, r := range s {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case !inTag:
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}
