package tmdb

import (
	"net/http"
	"time"

	"github.com/sobadon/epgd/domain/repository"
)

const defaultBaseURL = "https://api.themoviedb.org/3"

type client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string

	// 一時的な接続エラー・429 のときに一度だけ待って引き直す
	retryWait time.Duration
}

func New(apiKey string) repository.Catalog {
	return &client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    defaultBaseURL,
		apiKey:     apiKey,
		retryWait:  30 * time.Second,
	}
}
