package catalog

// 外部カタログ（tmdb, tvmaze）から引いてくるレコード群
// プロバイダ間のフィールド差は infrastructures 側で吸収する

type Season struct {
	SeasonNumber int `json:"season_number"`
}

type Series struct {
	ID      int      `json:"id"`
	Name    string   `json:"name"`
	Genres  []string `json:"genres"`
	Seasons []Season `json:"seasons"`
}

type Episode struct {
	Name     string `json:"name"`
	Overview string `json:"overview"`
	Season   int    `json:"season_number"`
	Episode  int    `json:"episode_number"`

	// YYYY-MM-DD
	// 不明なら空
	Airdate string `json:"air_date"`
}

type Movie struct {
	ID       int      `json:"id"`
	Title    string   `json:"title"`
	Overview string   `json:"overview"`
	Genres   []string `json:"genres"`

	// YYYY-MM-DD
	ReleaseDate string `json:"release_date"`
}

type SearchResult struct {
	ID   int
	Name string
}

// 外部 ID（imdb）逆引きの結果
// TV と映画のどちらでヒットしたかで呼び出し側の挙動が変わる
type FindResult struct {
	TVResults    []SearchResult
	MovieResults []SearchResult
}
