package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/sobadon/epgd/domain/model/catalog"
	"github.com/sobadon/epgd/internal/errutil"
)

type tmdbGenre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type tmdbSearchResult struct {
	ID int `json:"id"`

	// TV だと name, 映画だと title に入ってくる
	Name  string `json:"name"`
	Title string `json:"title"`
}

type tmdbSearchResponse struct {
	Results []tmdbSearchResult `json:"results"`
}

type tmdbFindResponse struct {
	TVResults    []tmdbSearchResult `json:"tv_results"`
	MovieResults []tmdbSearchResult `json:"movie_results"`
}

type tmdbSeries struct {
	ID      int         `json:"id"`
	Name    string      `json:"name"`
	Genres  []tmdbGenre `json:"genres"`
	Seasons []struct {
		SeasonNumber int `json:"season_number"`
	} `json:"seasons"`
}

type tmdbEpisode struct {
	Name          string `json:"name"`
	Overview      string `json:"overview"`
	SeasonNumber  int    `json:"season_number"`
	EpisodeNumber int    `json:"episode_number"`
	AirDate       string `json:"air_date"`
}

type tmdbSeasonResponse struct {
	Episodes []tmdbEpisode `json:"episodes"`
}

type tmdbMovie struct {
	ID          int         `json:"id"`
	Title       string      `json:"title"`
	Overview    string      `json:"overview"`
	ReleaseDate string      `json:"release_date"`
	Genres      []tmdbGenre `json:"genres"`
}

// GET して v にデコードする
// 接続エラー・タイムアウト・429 は retryWait 待って一度だけ引き直す
// 404 は errutil.ErrCatalogNotFound
func (c *client) doGet(ctx context.Context, endpoint string, queries url.Values, v interface{}) error {
	queries.Set("api_key", c.apiKey)
	requestURL := c.baseURL + endpoint + "?" + queries.Encode()

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
			return errors.Wrapf(errutil.ErrCatalogNotFound, "tmdb %s", endpoint)
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
	queries.Set("external_source", "imdb_id")

	var res tmdbFindResponse
	err := c.doGet(ctx, "/find/"+externalID, queries, &res)
	if err != nil {
		return nil, err
	}

	return &catalog.FindResult{
		TVResults:    tmdbSearchResultsToModel(res.TVResults),
		MovieResults: tmdbSearchResultsToModel(res.MovieResults),
	}, nil
}

func (c *client) SearchSeries(ctx context.Context, title string) ([]catalog.SearchResult, error) {
	queries := url.Values{}
	queries.Set("query", title)
	queries.Set("include_adult", "false")

	var res tmdbSearchResponse
	err := c.doGet(ctx, "/search/tv", queries, &res)
	if err != nil {
		return nil, err
	}
	return tmdbSearchResultsToModel(res.Results), nil
}

func (c *client) SearchMovie(ctx context.Context, title string) ([]catalog.SearchResult, error) {
	queries := url.Values{}
	queries.Set("query", title)
	queries.Set("include_adult", "false")

	var res tmdbSearchResponse
	err := c.doGet(ctx, "/search/movie", queries, &res)
	if err != nil {
		return nil, err
	}
	return tmdbSearchResultsToModel(res.Results), nil
}

func (c *client) GetSeriesDetail(ctx context.Context, id int) (*catalog.Series, error) {
	var res tmdbSeries
	err := c.doGet(ctx, fmt.Sprintf("/tv/%d", id), url.Values{}, &res)
	if err != nil {
		return nil, err
	}
	return tmdbSeriesToModel(res), nil
}

func (c *client) GetSeasonEpisodes(ctx context.Context, id int, seasonNumber int) ([]catalog.Episode, error) {
	var res tmdbSeasonResponse
	err := c.doGet(ctx, fmt.Sprintf("/tv/%d/season/%d", id, seasonNumber), url.Values{}, &res)
	if err != nil {
		return nil, err
	}

	var episodes []catalog.Episode
	for _, ep := range res.Episodes {
		episodes = append(episodes, catalog.Episode{
			Name:     ep.Name,
			Overview: ep.Overview,
			Season:   ep.SeasonNumber,
			Episode:  ep.EpisodeNumber,
			Airdate:  ep.AirDate,
		})
	}
	return episodes, nil
}

func (c *client) GetMovieDetail(ctx context.Context, id int) (*catalog.Movie, error) {
	var res tmdbMovie
	err := c.doGet(ctx, fmt.Sprintf("/movie/%d", id), url.Values{}, &res)
	if err != nil {
		return nil, err
	}

	return &catalog.Movie{
		ID:          res.ID,
		Title:       res.Title,
		Overview:    res.Overview,
		ReleaseDate: res.ReleaseDate,
		Genres:      tmdbGenresToNames(res.Genres),
	}, nil
}

func tmdbSearchResultsToModel(results []tmdbSearchResult) []catalog.SearchResult {
	var converted []catalog.SearchResult
	for _, r := range results {
		name := r.Name
		if name == "" {
			name = r.Title
		}
		converted = append(converted, catalog.SearchResult{ID: r.ID, Name: name})
	}
	return converted
}

func tmdbSeriesToModel(series tmdbSeries) *catalog.Series {
	converted := &catalog.Series{
		ID:     series.ID,
		Name:   series.Name,
		Genres: tmdbGenresToNames(series.Genres),
	}
	for _, season := range series.Seasons {
		converted.Seasons = append(converted.Seasons, catalog.Season{SeasonNumber: season.SeasonNumber})
	}
	return converted
}

func tmdbGenresToNames(genres []tmdbGenre) []string {
	var names []string
	for _, genre := range genres {
		names = append(names, genre.Name)
	}
	return names
}
