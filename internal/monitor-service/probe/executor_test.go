package probe

import (
	"VCS_API_Monitor/internal/monitor-service/model"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func newTestServer(t *testing.T) *httptest.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/ok", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Probe", r.Header.Get("X-Probe"))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"up"}`))
	})
	mux.HandleFunc("/missing", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})
	mux.HandleFunc("/broken", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})
	mux.HandleFunc("/echo", func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		w.Header().Set("Content-Type", r.Header.Get("Content-Type"))
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write(body)
	})
	mux.HandleFunc("/large", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Length", "2048")
		_, _ = w.Write([]byte(strings.Repeat("a", 2048)))
	})
	mux.HandleFunc("/slow", func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(2 * time.Second):
		case <-r.Context().Done():
		}
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestExecutor_Execute(t *testing.T) {
	server := newTestServer(t)
	executor := NewExecutor(5 * time.Second)

	testCases := []struct {
		name           string
		request        model.Request
		expectedResult func(t *testing.T, res Result)
	}{
		{
			name: "2xx response",
			request: model.Request{
				Method:  http.MethodGet,
				URL:     server.URL + "/ok",
				Headers: datatypes.JSON(`{"X-Probe":"monitor"}`),
			},
			expectedResult: func(t *testing.T, res Result) {
				assert.True(t, res.Success)
				assert.Equal(t, http.StatusOK, res.StatusCode)
				assert.Equal(t, "OK", res.StatusText)
				assert.JSONEq(t, `{"status":"up"}`, res.Data)
				assert.Equal(t, "monitor", res.Headers["X-Probe"])
				assert.Equal(t, "15 B", res.Size)
				assert.Empty(t, res.Error)
			},
		},
		{
			name:    "4xx still counts as a completed probe",
			request: model.Request{Method: "get", URL: server.URL + "/missing"},
			expectedResult: func(t *testing.T, res Result) {
				assert.True(t, res.Success)
				assert.Equal(t, http.StatusNotFound, res.StatusCode)
			},
		},
		{
			name:    "5xx still counts as a completed probe",
			request: model.Request{Method: http.MethodGet, URL: server.URL + "/broken"},
			expectedResult: func(t *testing.T, res Result) {
				assert.True(t, res.Success)
				assert.Equal(t, http.StatusServiceUnavailable, res.StatusCode)
				assert.Equal(t, "Service Unavailable", res.StatusText)
			},
		},
		{
			name:    "POST with JSON body",
			request: model.Request{Method: http.MethodPost, URL: server.URL + "/echo", Body: `{"sku":1}`},
			expectedResult: func(t *testing.T, res Result) {
				assert.True(t, res.Success)
				assert.Equal(t, http.StatusCreated, res.StatusCode)
				assert.JSONEq(t, `{"sku":1}`, res.Data)
				assert.Equal(t, "application/json", res.Headers["Content-Type"])
			},
		},
		{
			name:    "POST with JSON string body",
			request: model.Request{Method: http.MethodPost, URL: server.URL + "/echo", Body: `"ping"`},
			expectedResult: func(t *testing.T, res Result) {
				assert.True(t, res.Success)
				assert.Equal(t, `"ping"`, res.Data)
			},
		},
		{
			name:    "size from Content-Length uses binary units",
			request: model.Request{Method: http.MethodGet, URL: server.URL + "/large"},
			expectedResult: func(t *testing.T, res Result) {
				assert.Equal(t, "2.0 KiB", res.Size)
			},
		},
		{
			name:    "PUT without body",
			request: model.Request{Method: http.MethodPut, URL: server.URL + "/echo"},
			expectedResult: func(t *testing.T, res Result) {
				assert.False(t, res.Success)
				assert.Equal(t, 0, res.StatusCode)
				assert.Equal(t, "Request body is required for PUT requests", res.Error)
			},
		},
		{
			name:    "PATCH with invalid JSON",
			request: model.Request{Method: http.MethodPatch, URL: server.URL + "/echo", Body: `{sku:`},
			expectedResult: func(t *testing.T, res Result) {
				assert.False(t, res.Success)
				assert.Equal(t, 0, res.StatusCode)
				assert.Equal(t, "Request body for PATCH requests must be valid JSON", res.Error)
			},
		},
		{
			name:    "unresolvable host",
			request: model.Request{Method: http.MethodGet, URL: "http://monitor-target.invalid/health"},
			expectedResult: func(t *testing.T, res Result) {
				assert.False(t, res.Success)
				assert.Equal(t, 0, res.StatusCode)
				assert.True(t, strings.HasPrefix(res.Error, "Host not found"), res.Error)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			res := executor.Execute(context.Background(), tc.request)
			tc.expectedResult(t, res)
		})
	}
}

func TestExecutor_ConnectionRefused(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	addr := server.URL
	server.Close()

	res := NewExecutor(time.Second).Execute(context.Background(), model.Request{Method: http.MethodGet, URL: addr})
	assert.False(t, res.Success)
	assert.Equal(t, 0, res.StatusCode)
	assert.True(t, strings.HasPrefix(res.Error, "Connection refused"), res.Error)
}

func TestExecutor_Timeout(t *testing.T) {
	server := newTestServer(t)

	res := NewExecutor(100*time.Millisecond).Execute(context.Background(), model.Request{Method: http.MethodGet, URL: server.URL + "/slow"})
	assert.False(t, res.Success)
	assert.Equal(t, 0, res.StatusCode)
	assert.True(t, strings.HasPrefix(res.Error, "Request timeout"), res.Error)
	assert.GreaterOrEqual(t, res.ResponseTime, int64(100))
}

func TestResponseSize(t *testing.T) {
	h := http.Header{}
	assert.Equal(t, "0 B", responseSize(h, nil))
	assert.Equal(t, "1.5 KiB", responseSize(h, make([]byte, 1536)))

	h.Set("Content-Length", "1048576")
	assert.Equal(t, "1.0 MiB", responseSize(h, nil))

	h.Set("Content-Length", "garbage")
	require.Equal(t, "3 B", responseSize(h, []byte("abc")))
}
