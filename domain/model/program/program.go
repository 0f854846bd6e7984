package program

import (
	"strings"
	"time"
)

// 放送 1 回分
// UUID が放送インスタンスの同一性で、突合・補完でも変わらない
// それ以外のフィールドは突合・補完で上書きされる
type Program struct {
	UUID string

	// 番組タイトル
	Title string

	// エピソード名
	// EIT 由来だと説明文が入っていることもある
	Subtitle string

	Description string

	// 放送の開始・終了日時
	Start time.Time
	Stop  time.Time

	// "+0900" のようなタイムゾーン表記
	// パース時の文字列をそのまま保持する
	TZ string

	Channel string

	Categories []string

	PreviouslyShown bool
	Premiere        bool

	Ratings []string

	// xmltv_ns 形式の "シーズン.話数"（0 始まり）
	EpisodeNum string

	// imdb.com 形式の外部 ID（tt0088794 など）
	IMDBID string

	// 一致したエピソードの初回放送日
	Airdate string

	// 映画の公開年
	Date string

	Icon string
}

// 映画かどうかの判定に確実な方法はない
func (p *Program) IsMovie() bool {
	if strings.HasPrefix(strings.ToLower(p.Title), "movie: ") {
		return true
	}
	for _, cat := range p.Categories {
		if strings.Contains(strings.ToLower(cat), "movie") {
			return true
		}
	}
	return false
}

// 参照フィード側の記述系フィールドを p に写す
// Channel, Start, Stop, UUID には触れない
func (p *Program) CopyDescriptiveFields(ref Program) {
	p.Title = ref.Title
	p.Subtitle = ref.Subtitle
	p.Description = ref.Description
	p.PreviouslyShown = ref.PreviouslyShown
	p.Ratings = ref.Ratings
	p.EpisodeNum = ref.EpisodeNum
	p.IMDBID = ref.IMDBID
	p.Categories = ref.Categories
	p.Premiere = ref.Premiere
	p.Icon = ref.Icon
}
