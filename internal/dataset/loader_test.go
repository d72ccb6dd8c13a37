package dataset

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/steerage-ai/steerage/internal/config"
)

func testConfig(t *testing.T, url string) config.DatasetConfig {
	t.Helper()
	return config.DatasetConfig{
		SourceURL: url,
		LocalPath: filepath.Join(t.TempDir(), "titanic.csv"),
		Timeout:   5 * time.Second,
	}
}

func TestLoadDownloadsAndCaches(t *testing.T) {
	var hits int
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		_, _ = w.Write([]byte(sampleCSV))
	}))
	defer ts.Close()

	cfg := testConfig(t, ts.URL)
	loader := NewLoader(cfg)

	d, err := loader.Load(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 5, d.Len())
	assert.Equal(t, 1, hits)

	// Second load hits the cache, not the network.
	d, err = NewLoader(cfg).Load(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 5, d.Len())
	assert.Equal(t, 1, hits)
}

func TestLoadRedownloadsCorruptCache(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(sampleCSV))
	}))
	defer ts.Close()

	cfg := testConfig(t, ts.URL)
	assert.NoError(t, os.MkdirAll(filepath.Dir(cfg.LocalPath), 0o755))
	assert.NoError(t, os.WriteFile(cfg.LocalPath, []byte("not,a,titanic\nfile"), 0o644))

	d, err := NewLoader(cfg).Load(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 5, d.Len())

	// The cache was replaced by the redownloaded copy.
	data, err := os.ReadFile(cfg.LocalPath)
	assert.NoError(t, err)
	assert.Equal(t, sampleCSV, string(data))
}

func TestLoadUnavailable(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	_, err := NewLoader(testConfig(t, ts.URL)).Load(context.Background())
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestLoadEmptySourceUnavailable(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("PassengerId,Survived,Pclass,Sex,Age,Fare,Embarked\n"))
	}))
	defer ts.Close()

	_, err := NewLoader(testConfig(t, ts.URL)).Load(context.Background())
	assert.ErrorIs(t, err, ErrUnavailable)
}
