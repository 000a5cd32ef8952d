package source

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCSV = "tipo,pais,continente,categoria\nMovie,Brazil,América do Sul,Dramas\n"

func TestClient_FetchHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/data.csv", r.URL.Path)
		w.Header().Set("Content-Type", "text/csv")
		_, _ = w.Write([]byte(sampleCSV))
	}))
	defer srv.Close()

	c := New(srv.URL + "/data.csv")
	data, err := c.Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, sampleCSV, string(data))
	assert.Equal(t, srv.URL+"/data.csv", c.Source())
}

func TestClient_FetchHTTP_BadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := New(srv.URL).Fetch(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadStatus)
	assert.Contains(t, err.Error(), "404")
}

func TestClient_FetchHTTP_TooLarge(t *testing.T) {
	old := maxBodySize
	maxBodySize = int64(len(sampleCSV))
	t.Cleanup(func() { maxBodySize = old })

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(sampleCSV + "TV Show,Japan,Ásia,Animes\n"))
	}))
	defer srv.Close()

	_, err := New(srv.URL).Fetch(context.Background())
	assert.ErrorIs(t, err, ErrTooLarge)
}

func TestClient_FetchHTTP_AtLimit(t *testing.T) {
	old := maxBodySize
	maxBodySize = int64(len(sampleCSV))
	t.Cleanup(func() { maxBodySize = old })

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(sampleCSV))
	}))
	defer srv.Close()

	data, err := New(srv.URL).Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, sampleCSV, string(data))
}

func TestClient_FetchHTTP_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := New(url).Fetch(context.Background())
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestClient_FetchHTTP_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer srv.Close()

	_, err := New(srv.URL, WithTimeout(50*time.Millisecond)).Fetch(context.Background())
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestClient_FetchHTTP_CustomClient(t *testing.T) {
	var called bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		_, _ = w.Write([]byte(sampleCSV))
	}))
	defer srv.Close()

	_, err := New(srv.URL, WithHTTPClient(srv.Client())).Fetch(context.Background())
	require.NoError(t, err)
	assert.True(t, called)
}

func TestClient_FetchFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "titles.csv")
	require.NoError(t, os.WriteFile(path, []byte(sampleCSV), 0o644))

	t.Run("plain path", func(t *testing.T) {
		data, err := New(path).Fetch(context.Background())
		require.NoError(t, err)
		assert.Equal(t, sampleCSV, string(data))
	})

	t.Run("file url", func(t *testing.T) {
		data, err := New("file://" + path).Fetch(context.Background())
		require.NoError(t, err)
		assert.Equal(t, sampleCSV, string(data))
	})

	t.Run("missing", func(t *testing.T) {
		_, err := New(filepath.Join(t.TempDir(), "nope.csv")).Fetch(context.Background())
		assert.ErrorIs(t, err, ErrUnavailable)
	})
}
