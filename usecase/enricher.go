package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/sobadon/epgd/domain/model/catalog"
	"github.com/sobadon/epgd/domain/model/program"
	"github.com/sobadon/epgd/domain/repository"
	"github.com/sobadon/epgd/internal/errutil"
	"github.com/sobadon/epgd/internal/fuzzutil"
)

// 1 回の実行ごとに作り直すこと
// 「この実行で強制更新済みか」の状態を持っているので、使い回すと
// 次の実行のキャッシュ更新が抑制されてしまう
type ucEnricher struct {
	catalog  repository.Catalog
	identity repository.IdentityStore
	cache    repository.DetailCache

	// この実行でリモートから引き直した ID
	// 同じ ID の強制更新が 1 実行内で重複しないようにするため
	pulledSeries   map[int]struct{}
	pulledEpisodes map[int]struct{}

	// last_update の書き込みは 1 実行 1 回まで
	updateWritten bool
}

func NewEnricher(
	cat repository.Catalog,
	identity repository.IdentityStore,
	cache repository.DetailCache,
) *ucEnricher {
	return &ucEnricher{
		catalog:        cat,
		identity:       identity,
		cache:          cache,
		pulledSeries:   map[int]struct{}{},
		pulledEpisodes: map[int]struct{}{},
	}
}

// 番組をシリーズとしてカタログ ID に解決する
// 解決順: identity テーブル → 外部 ID 逆引き → タイトル検索
// 外部 ID が映画でヒットした場合はシリーズではないので、
// タイトル検索に落とさずそのまま errutil.ErrCatalogNotFound を返す
func (e *ucEnricher) ResolveSeriesID(ctx context.Context, pgram program.Program) (int, error) {
	if pgram.Title == "" {
		return 0, errors.Wrap(errutil.ErrCatalogNotFound, "program has no title")
	}

	identity, err := e.identity.FindByName(ctx, pgram.Title, pgram.Channel)
	if err == nil {
		return identity.CatalogID, nil
	}
	if !errors.Is(err, errutil.ErrDatabaseNotFoundIdentity) {
		return 0, err
	}

	if pgram.IMDBID != "" {
		identity, err := e.identity.FindByExternalID(ctx, pgram.IMDBID)
		if err == nil {
			return identity.CatalogID, nil
		}
		if !errors.Is(err, errutil.ErrDatabaseNotFoundIdentity) {
			return 0, err
		}

		found, err := e.catalog.FindByExternalID(ctx, pgram.IMDBID)
		if err != nil {
			return 0, err
		}
		if len(found.TVResults) != 0 {
			id := found.TVResults[0].ID
			err = e.saveIdentity(ctx, pgram, id)
			if err != nil {
				return 0, err
			}
			return id, nil
		}
		if len(found.MovieResults) != 0 {
			return 0, errors.Wrapf(errutil.ErrCatalogNotFound, "external id resolved to a movie (imdb_id = %s)", pgram.IMDBID)
		}
	}

	results, err := e.catalog.SearchSeries(ctx, pgram.Title)
	if err != nil {
		return 0, err
	}
	if len(results) == 0 {
		return 0, errors.Wrapf(errutil.ErrCatalogNotFound, "series not found (title = %s)", pgram.Title)
	}

	id := results[0].ID
	err = e.saveIdentity(ctx, pgram, id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (e *ucEnricher) saveIdentity(ctx context.Context, pgram program.Program, id int) error {
	return e.identity.Save(ctx, catalog.SeriesIdentity{
		SeriesName: pgram.Title,
		ChannelID:  pgram.Channel,
		ExternalID: pgram.IMDBID,
		CatalogID:  id,
	})
}

// シリーズ詳細・エピソード一覧で番組を補完する
// 返り値の bool は実在のエピソードを特定できたかどうか
func (e *ucEnricher) EnrichSeries(ctx context.Context, pgram program.Program, id int) (program.Program, bool, error) {
	series, err := e.getSeriesDetail(ctx, id, false)
	if err != nil {
		return pgram, false, err
	}

	pgram.Title = series.Name
	pgram.Categories = series.Genres

	episodes, err := e.getEpisodes(ctx, id, false)
	if err != nil && !errors.Is(err, errutil.ErrCatalogNotFound) {
		return pgram, false, err
	}

	matched := e.identifyEpisode(&pgram, episodes)

	// 見つからなかったら、この実行でまだ引き直していない場合に限り
	// キャッシュを無視して取り直してもう一度だけ試す
	if !matched {
		if _, pulled := e.pulledEpisodes[id]; !pulled {
			episodes, err = e.getEpisodes(ctx, id, true)
			if err != nil && !errors.Is(err, errutil.ErrCatalogNotFound) {
				return pgram, false, err
			}
			matched = e.identifyEpisode(&pgram, episodes)
		}
	}

	if !matched {
		// エピソード番号を鍵にする下流のために、放送開始時刻から
		// 一意で再現可能な番号を合成しておく
		pgram.EpisodeNum = fallbackEpisodeNum(pgram.Start)
	}

	return pgram, matched, nil
}

// 番組を映画としてカタログ ID に解決する
func (e *ucEnricher) ResolveMovieID(ctx context.Context, pgram program.Program) (int, error) {
	if pgram.IMDBID != "" {
		found, err := e.catalog.FindByExternalID(ctx, pgram.IMDBID)
		if err != nil {
			return 0, err
		}
		if len(found.MovieResults) != 0 {
			return found.MovieResults[0].ID, nil
		}
	}

	if pgram.Title == "" {
		return 0, errors.Wrap(errutil.ErrCatalogNotFound, "program has no title")
	}

	results, err := e.catalog.SearchMovie(ctx, pgram.Title)
	if err != nil {
		return 0, err
	}
	if len(results) == 0 {
		return 0, errors.Wrapf(errutil.ErrCatalogNotFound, "movie not found (title = %s)", pgram.Title)
	}
	return results[0].ID, nil
}

func (e *ucEnricher) EnrichMovie(ctx context.Context, pgram program.Program, id int) (program.Program, bool, error) {
	movie, err := e.catalog.GetMovieDetail(ctx, id)
	if err != nil {
		return pgram, false, err
	}

	// エピソード番号が残っていると下流がシリーズ扱いしてしまう
	pgram.EpisodeNum = ""
	pgram.Description = movie.Overview
	pgram.Categories = movie.Genres

	if len(movie.ReleaseDate) >= 4 {
		year := movie.ReleaseDate[:4]
		pgram.Title = fmt.Sprintf("%s_(%s)", movie.Title, year)
		pgram.Date = year
	} else {
		pgram.Title = movie.Title
	}

	return pgram, true, nil
}

// 全番組を順に補完する
// 1 番組の失敗（一時的な通信エラー含む）でランは止めない
func (e *ucEnricher) EnrichAll(ctx context.Context, pgrams []program.Program) ([]program.Program, int) {
	successes := 0
	for i := range pgrams {
		if i%100 == 0 {
			log.Ctx(ctx).Info().Msgf("enriching programs ... (%d / %d)", i, len(pgrams))
		}

		matched, err := e.enrichOne(ctx, &pgrams[i])
		if errors.Is(err, errutil.ErrCatalogNotFound) {
			continue
		}
		if err != nil {
			log.Ctx(ctx).Warn().Msgf("failed to enrich program (title = %s): %+v", pgrams[i].Title, err)
			continue
		}
		if matched {
			successes++
		}
	}

	log.Ctx(ctx).Info().Msgf("finished enriching programs (successes = %d, total = %d)", successes, len(pgrams))
	return pgrams, successes
}

func (e *ucEnricher) enrichOne(ctx context.Context, pgram *program.Program) (bool, error) {
	if pgram.IsMovie() {
		id, err := e.ResolveMovieID(ctx, *pgram)
		if err != nil {
			return false, err
		}
		enriched, matched, err := e.EnrichMovie(ctx, *pgram, id)
		if err != nil {
			return false, err
		}
		*pgram = enriched
		return matched, nil
	}

	id, err := e.ResolveSeriesID(ctx, *pgram)
	if err != nil {
		return false, err
	}
	enriched, matched, err := e.EnrichSeries(ctx, *pgram, id)
	if err != nil {
		return false, err
	}
	*pgram = enriched
	return matched, nil
}

// エピソード特定
// サブタイトル → エピソード名、サブタイトル → あらすじ、説明文 → あらすじ の順で試す
func (e *ucEnricher) identifyEpisode(pgram *program.Program, episodes []catalog.Episode) bool {
	if len(episodes) == 0 {
		return false
	}

	names := make([]string, len(episodes))
	summaries := make([]string, len(episodes))
	for i, ep := range episodes {
		names[i] = ep.Name
		summaries[i] = ep.Overview
	}

	if pgram.Subtitle != "" {
		searchText := pgram.Subtitle
		overwriteSubtitle := true

		// "/" 区切りは複数エピソード枠
		// 前半だけで照合し、一致してもサブタイトルは書き換えない
		if strings.Contains(pgram.Subtitle, "/") {
			searchText = strings.SplitN(pgram.Subtitle, "/", 2)[0]
			overwriteSubtitle = false
		}

		idx, score := fuzzutil.BestMatch(searchText, names, fuzzutil.Ratio)
		if score > matchThreshold {
			embedEpisode(pgram, episodes[idx], overwriteSubtitle)
			return true
		}

		// EIT はサブタイトルの位置にあらすじを入れてくることがある
		idx, score = fuzzutil.BestMatch(pgram.Subtitle, summaries, fuzzutil.TokenSetRatio)
		if score > matchThreshold {
			embedEpisode(pgram, episodes[idx], overwriteSubtitle)
			return true
		}
	}

	if pgram.Description != "" {
		idx, score := fuzzutil.BestMatch(pgram.Description, summaries, fuzzutil.TokenSetRatio)
		if score > matchThreshold {
			embedEpisode(pgram, episodes[idx], true)
			return true
		}
	}

	return false
}

// カタログの番号は 1 始まり、xmltv_ns は 0 始まり
func embedEpisode(pgram *program.Program, ep catalog.Episode, overwriteSubtitle bool) {
	pgram.EpisodeNum = fmt.Sprintf("%d.%d", ep.Season-1, ep.Episode-1)
	if ep.Airdate != "" {
		pgram.Airdate = ep.Airdate
	}
	if overwriteSubtitle && ep.Name != "" {
		pgram.Subtitle = ep.Name
	}
}

func fallbackEpisodeNum(start time.Time) string {
	return start.Format("20060102.1504")
}

// キャッシュ経由のシリーズ詳細取得
// force でもこの実行で引き直し済みならキャッシュを読む
func (e *ucEnricher) getSeriesDetail(ctx context.Context, id int, force bool) (*catalog.Series, error) {
	_, pulled := e.pulledSeries[id]
	if !force || pulled {
		series, err := e.cache.LoadSeries(id)
		if err == nil {
			return series, nil
		}
		if !errors.Is(err, errutil.ErrCacheMiss) {
			return nil, err
		}
	}

	series, err := e.catalog.GetSeriesDetail(ctx, id)
	if err != nil {
		return nil, err
	}

	err = e.cache.StoreSeries(id, series)
	if err != nil {
		return nil, err
	}
	e.markUpdated(ctx)
	e.pulledSeries[id] = struct{}{}
	return series, nil
}

// キャッシュ経由のエピソード一覧取得
// リモートから引くときはシリーズ詳細のシーズン一覧を順に引いて連結する
func (e *ucEnricher) getEpisodes(ctx context.Context, id int, force bool) ([]catalog.Episode, error) {
	_, pulled := e.pulledEpisodes[id]
	if !force || pulled {
		episodes, err := e.cache.LoadEpisodes(id)
		if err == nil {
			return episodes, nil
		}
		if !errors.Is(err, errutil.ErrCacheMiss) {
			return nil, err
		}
	}

	series, err := e.getSeriesDetail(ctx, id, false)
	if err != nil {
		return nil, err
	}
	if len(series.Seasons) == 0 {
		return nil, errors.Wrapf(errutil.ErrCatalogNotFound, "series has no seasons (id = %d)", id)
	}

	var episodes []catalog.Episode
	for _, season := range series.Seasons {
		seasonEpisodes, err := e.catalog.GetSeasonEpisodes(ctx, id, season.SeasonNumber)
		if err != nil {
			return nil, err
		}
		episodes = append(episodes, seasonEpisodes...)
	}
	if len(episodes) == 0 {
		return nil, errors.Wrapf(errutil.ErrCatalogNotFound, "series has no episodes (id = %d)", id)
	}

	err = e.cache.StoreEpisodes(id, episodes)
	if err != nil {
		return nil, err
	}
	e.markUpdated(ctx)
	e.pulledEpisodes[id] = struct{}{}
	return episodes, nil
}

func (e *ucEnricher) markUpdated(ctx context.Context) {
	if e.updateWritten {
		return
	}
	err := e.cache.WriteLastUpdate(time.Now())
	if err != nil {
		// 更新時刻が書けなくても補完自体は続けられる
		log.Ctx(ctx).Warn().Msgf("failed to write last update: %+v", err)
		return
	}
	e.updateWritten = true
}
