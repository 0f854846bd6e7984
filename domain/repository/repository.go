//go:generate mockgen -source=$GOFILE -destination ../../testdata/mock/domain/$GOPACKAGE/$GOFILE
package repository

import (
	"context"
	"time"

	"github.com/sobadon/epgd/domain/model/catalog"
	"github.com/sobadon/epgd/domain/model/guide"
)

// 外部メタデータカタログ
// tmdb / tvmaze の 2 実装があり、設定で選ぶ
// 検索系（Search*, FindByExternalID）の空振りは空の結果で表す
// 詳細参照系（Get*）の空振りは errutil.ErrCatalogNotFound を返す
// 一時的な接続エラーは実装側で一度だけリトライしてから返す
type Catalog interface {
	FindByExternalID(ctx context.Context, externalID string) (*catalog.FindResult, error)
	SearchSeries(ctx context.Context, title string) ([]catalog.SearchResult, error)
	SearchMovie(ctx context.Context, title string) ([]catalog.SearchResult, error)
	GetSeriesDetail(ctx context.Context, id int) (*catalog.Series, error)
	GetSeasonEpisodes(ctx context.Context, id int, seasonNumber int) ([]catalog.Episode, error)
	GetMovieDetail(ctx context.Context, id int) (*catalog.Movie, error)
}

// (シリーズ名, チャンネル) → カタログ ID の永続テーブル
// 返されるエラー
// - errutil.ErrDatabaseNotFoundIdentity
type IdentityStore interface {
	Save(ctx context.Context, identity catalog.SeriesIdentity) error
	FindByName(ctx context.Context, seriesName string, channelID string) (*catalog.SeriesIdentity, error)
	FindByExternalID(ctx context.Context, externalID string) (*catalog.SeriesIdentity, error)
}

// カタログ ID ごとのシリーズ詳細・エピソード一覧の永続キャッシュ
// ファイル欠損・壊れたファイルは errutil.ErrCacheMiss 扱い
type DetailCache interface {
	LoadSeries(id int) (*catalog.Series, error)
	StoreSeries(id int, series *catalog.Series) error
	LoadEpisodes(id int) ([]catalog.Episode, error)
	StoreEpisodes(id int, episodes []catalog.Episode) error
	LastUpdate() (time.Time, error)
	WriteLastUpdate(t time.Time) error
}

// XMLTV フィードの取得と書き出し
type GuideSource interface {
	Fetch(ctx context.Context, url string) (*guide.ParsedGuide, error)
	Write(g *guide.ParsedGuide, path string) error
}
