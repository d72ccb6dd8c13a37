package dataset

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/steerage-ai/steerage/internal/config"
)

// ErrUnavailable marks a dataset that could not be obtained from the local
// cache or the remote source after one redownload attempt.
var ErrUnavailable = errors.New("dataset unavailable")

// Loader obtains the passenger table, caching the raw CSV at a local path so
// subsequent starts do not hit the network.
type Loader struct {
	cfg    config.DatasetConfig
	client *http.Client
}

func NewLoader(cfg config.DatasetConfig) *Loader {
	return &Loader{
		cfg: cfg,
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// Load returns the parsed Dataset. A cached file that fails to parse or
// parses to zero rows triggers exactly one redownload before giving up.
func (l *Loader) Load(ctx context.Context) (*Dataset, error) {
	if data, err := os.ReadFile(l.cfg.LocalPath); err == nil {
		d, err := ParseCSV(data)
		if err == nil && !d.Empty() {
			slog.Info("loaded dataset from cache", "path", l.cfg.LocalPath, "rows", d.Len())
			return d, nil
		}
		slog.Warn("cached dataset unusable, redownloading", "path", l.cfg.LocalPath, "error", err)
	}

	data, err := l.download(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	d, err := ParseCSV(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if d.Empty() {
		return nil, fmt.Errorf("%w: source returned no rows", ErrUnavailable)
	}

	if err := l.writeCache(data); err != nil {
		slog.Warn("failed to cache dataset", "path", l.cfg.LocalPath, "error", err)
	}

	slog.Info("downloaded dataset", "url", l.cfg.SourceURL, "rows", d.Len())
	return d, nil
}

func (l *Loader) download(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.cfg.SourceURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("source returned status %d", resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}

func (l *Loader) writeCache(data []byte) error {
	if err := os.MkdirAll(filepath.Dir(l.cfg.LocalPath), 0o755); err != nil {
		return err
	}
	return os.WriteFile(l.cfg.LocalPath, data, 0o644)
}
