package run

import "time"

type config struct {
	SqlitePath string `env:"SQLITE_PATH" envDefault:"db.sqlite3"`
	CacheDir   string `env:"CACHE_DIR" envDefault:"./cache"`

	LocalGuideURL     string `env:"LOCAL_GUIDE_URL,required"`
	ReferenceGuideURL string `env:"REFERENCE_GUIDE_URL,required"`
	OutputPath        string `env:"OUTPUT_PATH" envDefault:"./xmltv.xml"`

	// tmdb / tvmaze
	Catalog    string `env:"CATALOG" envDefault:"tvmaze"`
	TMDBAPIKey string `env:"TMDB_API_KEY"`

	Interval time.Duration `env:"INTERVAL" envDefault:"12h"`
}
