package tvmaze

import (
	"net/http"
	"time"

	"github.com/sobadon/epgd/domain/repository"
)

const defaultBaseURL = "https://api.tvmaze.com"

// tvmaze は TV 専門のカタログ
// 映画系の操作は常に空振りになる
type client struct {
	httpClient *http.Client
	baseURL    string

	retryWait time.Duration
}

func New() repository.Catalog {
	return &client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    defaultBaseURL,
		retryWait:  30 * time.Second,
	}
}
