package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	c, err := New(srv.URL+"/api", zap.NewNop())
	require.NoError(t, err)
	return c
}

func TestBaseURL(t *testing.T) {
	assert.Equal(t, "https://fluffy-robot-8000.app.github.dev/api/", BaseURL("fluffy-robot", "", 0))
	assert.Equal(t, "https://box-9000.example.dev/api/", BaseURL(" box ", "example.dev", 9000))
}

func TestNew_RejectsBadBase(t *testing.T) {
	for _, base := range []string{"", "ftp://x/api/", "/api/", "http://"} {
		_, err := New(base, nil)
		assert.Error(t, err, "base %q", base)
	}
}

func TestEndpoint(t *testing.T) {
	c, err := New("https://host-8000.app.github.dev/api", nil)
	require.NoError(t, err)

	assert.Equal(t, "https://host-8000.app.github.dev/api/", c.BaseURL())
	assert.Equal(t, "https://host-8000.app.github.dev/api/users/", c.Endpoint("users", ""))
	assert.Equal(t, "https://host-8000.app.github.dev/api/users/42/", c.Endpoint("users", "42"))
	assert.Equal(t, "https://host-8000.app.github.dev/api/leaderboard/", c.Endpoint("/leaderboard/", ""))
}

func TestList_SendsSingleGET(t *testing.T) {
	var hits int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/teams/", r.URL.Path)
		assert.NotEmpty(t, r.Header.Get(RequestIDHeader))
		_, _ = io.WriteString(w, `{"results":[{"id":1},{"id":2},{"id":3}]}`)
	})

	got, err := c.List(context.Background(), "teams")
	require.NoError(t, err)
	assert.Len(t, got, 3)
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))
}

func TestList_NonSuccessStatus(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	_, err := c.List(context.Background(), "activities")
	require.Error(t, err)

	var he *HTTPError
	require.True(t, errors.As(err, &he))
	assert.Equal(t, http.StatusInternalServerError, he.Status)
	assert.Equal(t, http.StatusInternalServerError, StatusCode(err))
	assert.Equal(t, "HTTP error! status: 500", Message(err))
}

func TestList_InvalidBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "<html>not json</html>")
	})

	_, err := c.List(context.Background(), "workouts")
	require.Error(t, err)
	assert.Equal(t, "The server sent a response that could not be read.", Message(err))
}

func TestList_CanceledContext(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `[]`)
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.List(ctx, "users")
	require.Error(t, err)
	assert.True(t, IsCanceled(err))
}

func TestListInto_PassesPosition(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `[{"n":"a"},{"n":"b"}]`)
	})

	got, err := ListInto(context.Background(), c, "leaderboard", func(i int, raw json.RawMessage) string {
		var v struct{ N string }
		_ = json.Unmarshal(raw, &v)
		return v.N + string(rune('0'+i))
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"a0", "b1"}, got)
}

func TestCreateUpdateDelete(t *testing.T) {
	type call struct {
		method, path, contentType string
		body                      map[string]any
	}
	var calls []call
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		cl := call{method: r.Method, path: r.URL.Path, contentType: r.Header.Get("Content-Type")}
		if r.Body != nil {
			b, _ := io.ReadAll(r.Body)
			if len(b) > 0 {
				_ = json.Unmarshal(b, &cl.body)
			}
		}
		calls = append(calls, cl)
		if r.Method == http.MethodDelete {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		_, _ = io.WriteString(w, `{}`)
	})

	ctx := context.Background()
	require.NoError(t, c.Create(ctx, "users", map[string]string{"username": "a"}))
	require.NoError(t, c.Update(ctx, "users", "7", map[string]string{"username": "b"}))
	require.NoError(t, c.Delete(ctx, "users", "7"))

	require.Len(t, calls, 3)
	assert.Equal(t, call{method: "POST", path: "/api/users/", contentType: "application/json", body: map[string]any{"username": "a"}}, calls[0])
	assert.Equal(t, call{method: "PUT", path: "/api/users/7/", contentType: "application/json", body: map[string]any{"username": "b"}}, calls[1])
	assert.Equal(t, "DELETE", calls[2].method)
	assert.Equal(t, "/api/users/7/", calls[2].path)
	assert.Empty(t, calls[2].contentType)
}

func TestUpdateDelete_RequireID(t *testing.T) {
	c, err := New("http://localhost:8000/api/", nil)
	require.NoError(t, err)
	assert.Error(t, c.Update(context.Background(), "users", "", struct{}{}))
	assert.Error(t, c.Delete(context.Background(), "users", ""))
}

func TestPing(t *testing.T) {
	ok := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	assert.NoError(t, ok.Ping(context.Background()), "4xx still means the API answered")

	down := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})
	assert.Error(t, down.Ping(context.Background()))
}

func TestMessage(t *testing.T) {
	assert.Equal(t, "", Message(nil))
	assert.Equal(t, "HTTP error! status: 404", Message(&HTTPError{Status: 404}))
	assert.Equal(t, "The request was canceled.", Message(context.Canceled))
	assert.Equal(t, "Failed to fetch: the OctoFit API could not be reached.", Message(errors.New("dial tcp: refused")))
}
