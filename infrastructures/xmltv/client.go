package xmltv

import (
	"net/http"
	"time"

	"github.com/sobadon/epgd/domain/repository"
)

type client struct {
	httpClient *http.Client
}

func New() repository.GuideSource {
	return &client{
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}
}
