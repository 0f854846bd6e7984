package cachefile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	"github.com/sobadon/epgd/domain/model/catalog"
	"github.com/sobadon/epgd/domain/repository"
	"github.com/sobadon/epgd/internal/errutil"
	"github.com/sobadon/epgd/internal/fileutil"
	"github.com/sobadon/epgd/internal/timeutil"
)

// カタログ ID ごとに JSON ファイルを 1 つずつ置く
// 人が直接覗けるようにしておきたいので素の JSON
// 書きかけ・壊れたファイルのリカバリはしない（読めなければキャッシュミス扱い）
type store struct {
	dir string
}

func New(dir string) (repository.DetailCache, error) {
	err := fileutil.MkdirAllIfNotExist(dir)
	if err != nil {
		return nil, errors.Wrap(errutil.ErrInternal, err.Error())
	}
	return &store{dir: dir}, nil
}

func (s *store) seriesPath(id int) string {
	return filepath.Join(s.dir, fmt.Sprintf("%d.json", id))
}

func (s *store) episodesPath(id int) string {
	return filepath.Join(s.dir, fmt.Sprintf("%d_episode_info.json", id))
}

func (s *store) lastUpdatePath() string {
	return filepath.Join(s.dir, "last_update.txt")
}

func (s *store) LoadSeries(id int) (*catalog.Series, error) {
	var series catalog.Series
	err := loadJSON(s.seriesPath(id), &series)
	if err != nil {
		return nil, err
	}
	// 欠けている blob はキャッシュ無し扱いで再取得させる
	if series.Name == "" {
		return nil, errors.Wrapf(errutil.ErrCacheMiss, "malformed series blob (id = %d)", id)
	}
	return &series, nil
}

func (s *store) StoreSeries(id int, series *catalog.Series) error {
	return storeJSON(s.seriesPath(id), series)
}

func (s *store) LoadEpisodes(id int) ([]catalog.Episode, error) {
	var episodes []catalog.Episode
	err := loadJSON(s.episodesPath(id), &episodes)
	if err != nil {
		return nil, err
	}
	if len(episodes) == 0 {
		return nil, errors.Wrapf(errutil.ErrCacheMiss, "empty episode blob (id = %d)", id)
	}
	return episodes, nil
}

func (s *store) StoreEpisodes(id int, episodes []catalog.Episode) error {
	return storeJSON(s.episodesPath(id), episodes)
}

func (s *store) LastUpdate() (time.Time, error) {
	content, err := os.ReadFile(s.lastUpdatePath())
	if err != nil {
		return time.Time{}, errors.Wrap(errutil.ErrCacheMiss, err.Error())
	}
	t, err := time.Parse(timeutil.LastUpdateLayout, string(content))
	if err != nil {
		return time.Time{}, errors.Wrap(errutil.ErrCacheMiss, err.Error())
	}
	return t, nil
}

func (s *store) WriteLastUpdate(t time.Time) error {
	content := timeutil.TruncateToSecond(t).Format(timeutil.LastUpdateLayout)
	err := os.WriteFile(s.lastUpdatePath(), []byte(content), 0644)
	if err != nil {
		return errors.Wrap(errutil.ErrCacheWrite, err.Error())
	}
	return nil
}

func loadJSON(path string, v interface{}) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(errutil.ErrCacheMiss, err.Error())
	}
	err = json.Unmarshal(content, v)
	if err != nil {
		return errors.Wrap(errutil.ErrCacheMiss, err.Error())
	}
	return nil
}

func storeJSON(path string, v interface{}) error {
	content, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return errors.Wrap(errutil.ErrJSONEncode, err.Error())
	}
	err = os.WriteFile(path, content, 0644)
	if err != nil {
		return errors.Wrap(errutil.ErrCacheWrite, err.Error())
	}
	return nil
}
