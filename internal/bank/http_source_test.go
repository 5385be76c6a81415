package bank

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPSource_Fetch(t *testing.T) {
	t.Run("returns the bank payload", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/Admin%20Officer.json", r.URL.EscapedPath())
			_, _ = w.Write([]byte(`[{"question":"Q","options":["a","b"],"correctAnswer":0}]`))
		}))
		defer server.Close()

		source := NewHTTPSource(server.URL+"/", 0)
		defer func() {
			_ = source.Close()
		}()

		payload, err := source.Fetch(context.Background(), "Admin Officer")

		require.NoError(t, err)
		assert.Contains(t, string(payload), `"question":"Q"`)
	})

	t.Run("client errors are not retried", func(t *testing.T) {
		var requests atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requests.Add(1)
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		source := NewHTTPSource(server.URL, 3)
		defer func() {
			_ = source.Close()
		}()

		_, err := source.Fetch(context.Background(), "Admin Officer")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "404")
		assert.Equal(t, int32(1), requests.Load())
	})

	t.Run("server errors are retried until success", func(t *testing.T) {
		var requests atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if requests.Add(1) < 3 {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			_, _ = w.Write([]byte(`[]`))
		}))
		defer server.Close()

		source := NewHTTPSource(server.URL, 3)
		defer func() {
			_ = source.Close()
		}()

		payload, err := source.Fetch(context.Background(), "Admin Officer")

		require.NoError(t, err)
		assert.Equal(t, `[]`, string(payload))
		assert.Equal(t, int32(3), requests.Load())
	})
}
