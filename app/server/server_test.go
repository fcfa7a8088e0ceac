package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/toggler/app/session"
	"github.com/umputun/toggler/app/store"
	"github.com/umputun/toggler/app/toggle"
)

func TestServer_PageFlow(t *testing.T) {
	srv, _ := newTestServer(t, Config{Version: "test"})
	ts := httptest.NewServer(srv.handler())
	defer ts.Close()
	client := newClient(t)

	t.Run("first visit initializes session", func(t *testing.T) {
		body, code := get(t, client, ts.URL+"/")
		require.Equal(t, http.StatusOK, code)
		assert.Contains(t, body, ">Stop</button>")
		assert.Contains(t, body, `value="Session initialized"`)
	})

	t.Run("htmx toggle returns panel", func(t *testing.T) {
		body, code := post(t, client, ts.URL+"/web/trigger/toggle", true)
		require.Equal(t, http.StatusOK, code)
		assert.Contains(t, body, ">Speak</button>")
		assert.Contains(t, body, "background-color: #e74c3c")
		assert.Contains(t, body, `value="Mode switched to Speak"`)
		assert.NotContains(t, body, "<html")
	})

	t.Run("form post redirects to page with new state", func(t *testing.T) {
		body, code := post(t, client, ts.URL+"/web/trigger/notifya", false)
		require.Equal(t, http.StatusOK, code, "redirect followed")
		assert.Contains(t, body, "<html")
		assert.Contains(t, body, ">Speak</button>", "notify keeps mode")
		assert.Contains(t, body, `value="Secondary 1 pressed"`)
	})

	t.Run("panel reflects session", func(t *testing.T) {
		body, code := get(t, client, ts.URL+"/web/panel")
		require.Equal(t, http.StatusOK, code)
		assert.Contains(t, body, ">Speak</button>")
	})

	t.Run("unknown trigger rejected", func(t *testing.T) {
		_, code := post(t, client, ts.URL+"/web/trigger/reset", true)
		assert.Equal(t, http.StatusBadRequest, code)
	})

	t.Run("another browser gets its own session", func(t *testing.T) {
		body, code := get(t, newClient(t), ts.URL+"/")
		require.Equal(t, http.StatusOK, code)
		assert.Contains(t, body, ">Stop</button>")
		assert.Contains(t, body, `value="Session initialized"`)
	})
}

func TestServer_APIFlow(t *testing.T) {
	srv, _ := newTestServer(t, Config{Version: "test"})
	ts := httptest.NewServer(srv.handler())
	defer ts.Close()
	client := newClient(t)

	var view toggle.View
	body, code := get(t, client, ts.URL+"/api/v1/state")
	require.Equal(t, http.StatusOK, code)
	require.NoError(t, json.Unmarshal([]byte(body), &view))
	assert.Equal(t, "stop", view.Mode.String())
	assert.Equal(t, toggle.StatusInitialized, view.Status)

	body, code = post(t, client, ts.URL+"/api/v1/trigger/toggle", false)
	require.Equal(t, http.StatusOK, code)
	require.NoError(t, json.Unmarshal([]byte(body), &view))
	assert.Equal(t, "speak", view.Mode.String())

	// page sees the state changed through the api
	page, code := get(t, client, ts.URL+"/")
	require.Equal(t, http.StatusOK, code)
	assert.Contains(t, page, ">Speak</button>")

	body, code = post(t, client, ts.URL+"/api/v1/trigger/unknown", false)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Contains(t, body, "unknown trigger")

	body, code = get(t, client, ts.URL+"/api/v1/palette")
	require.Equal(t, http.StatusOK, code)
	assert.Contains(t, body, `"name":"classic"`)
}

func TestServer_ToggleParityOverHTTP(t *testing.T) {
	srv, _ := newTestServer(t, Config{Version: "test"})
	ts := httptest.NewServer(srv.handler())
	defer ts.Close()
	client := newClient(t)

	for range 11 {
		_, code := post(t, client, ts.URL+"/api/v1/trigger/toggle", false)
		require.Equal(t, http.StatusOK, code)
	}
	var view toggle.View
	body, _ := get(t, client, ts.URL+"/api/v1/state")
	require.NoError(t, json.Unmarshal([]byte(body), &view))
	assert.Equal(t, "speak", view.Mode.String(), "odd number of toggles flips the initial mode")
}

func TestServer_Ping(t *testing.T) {
	srv, _ := newTestServer(t, Config{Version: "test"})

	req := httptest.NewRequest(http.MethodGet, "/ping", http.NoBody)
	rec := httptest.NewRecorder()
	srv.routes().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "pong", rec.Body.String())
}

func TestServer_Static(t *testing.T) {
	srv, _ := newTestServer(t, Config{})
	req := httptest.NewRequest(http.MethodGet, "/static/style.css", http.NoBody)
	rec := httptest.NewRecorder()
	srv.routes().ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), ".btn")
	assert.Empty(t, rec.Result().Cookies(), "static files do not start sessions")
}

func TestServer_Health(t *testing.T) {
	t.Run("reports sessions", func(t *testing.T) {
		srv, _ := newTestServer(t, Config{})
		for range 2 { // each request without a cookie opens a session
			rec := httptest.NewRecorder()
			srv.routes().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", http.NoBody))
			require.Equal(t, http.StatusOK, rec.Code)
		}

		req := httptest.NewRequest(http.MethodGet, "/health", http.NoBody)
		rec := httptest.NewRecorder()
		srv.routes().ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			Status   string `json:"status"`
			Sessions int    `json:"sessions"`
			Palette  string `json:"palette"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "ok", resp.Status)
		assert.Equal(t, 2, resp.Sessions)
		assert.Equal(t, "classic", resp.Palette)
	})

	t.Run("backend failure", func(t *testing.T) {
		srv, _ := newTestServer(t, Config{})
		srv.counter = failingCounter{}
		rec := httptest.NewRecorder()
		srv.routes().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", http.NoBody))
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}

func TestServer_BaseURL(t *testing.T) {
	srv, _ := newTestServer(t, Config{BaseURL: "/toggler"})
	ts := httptest.NewServer(srv.handler())
	defer ts.Close()

	t.Run("redirects base to trailing slash", func(t *testing.T) {
		client := newClient(t)
		client.CheckRedirect = func(*http.Request, []*http.Request) error { return http.ErrUseLastResponse }
		resp, err := client.Get(ts.URL + "/toggler")
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusMovedPermanently, resp.StatusCode)
		assert.Equal(t, "/toggler/", resp.Header.Get("Location"))
	})

	t.Run("redirects paths outside of prefix", func(t *testing.T) {
		client := newClient(t)
		client.CheckRedirect = func(*http.Request, []*http.Request) error { return http.ErrUseLastResponse }
		tbl := []struct{ path, location string }{
			{"/", "/toggler/"},
			{"/api/v1/state", "/toggler/api/v1/state"},
			{"/web/panel?x=1", "/toggler/web/panel?x=1"},
		}
		for _, tc := range tbl {
			resp, err := client.Get(ts.URL + tc.path)
			require.NoError(t, err)
			resp.Body.Close()
			assert.Equal(t, http.StatusMovedPermanently, resp.StatusCode, tc.path)
			assert.Equal(t, tc.location, resp.Header.Get("Location"), tc.path)
		}
	})

	t.Run("page served under prefix", func(t *testing.T) {
		body, code := get(t, newClient(t), ts.URL+"/toggler/")
		require.Equal(t, http.StatusOK, code)
		assert.Contains(t, body, `href="/toggler/static/style.css"`)
		assert.Contains(t, body, `action="/toggler/web/trigger/toggle"`)
	})

	t.Run("form post redirect stays under prefix", func(t *testing.T) {
		client := newClient(t)
		client.CheckRedirect = func(*http.Request, []*http.Request) error { return http.ErrUseLastResponse }
		resp, err := client.Post(ts.URL+"/toggler/web/trigger/toggle", "", http.NoBody)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
		assert.Equal(t, "/toggler/", resp.Header.Get("Location"))
	})
}

func TestServer_Run(t *testing.T) {
	port := freePort(t)
	srv, _ := newTestServer(t, Config{Address: fmt.Sprintf("127.0.0.1:%d", port), ReadTimeout: time.Second})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get(fmt.Sprintf("http://127.0.0.1:%d/ping", port))
		if err != nil {
			return false
		}
		_ = resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestServer_Defaults(t *testing.T) {
	srv, _ := newTestServer(t, Config{})
	assert.Equal(t, int64(64*1024), srv.bodySizeLimit())
	assert.Equal(t, int64(1000), srv.requestsPerSec())
	assert.Equal(t, 5*time.Second, srv.shutdownTimeout())

	srv, _ = newTestServer(t, Config{BodySizeLimit: 10, RequestsPerSec: 5, ShutdownTimeout: time.Second})
	assert.Equal(t, int64(10), srv.bodySizeLimit())
	assert.Equal(t, int64(5), srv.requestsPerSec())
	assert.Equal(t, time.Second, srv.shutdownTimeout())
}

type failingCounter struct{}

func (failingCounter) Count(context.Context) (int, error) { return 0, errors.New("db down") }

func newTestServer(t *testing.T, cfg Config) (*Server, *store.Memory) {
	t.Helper()
	pal, err := toggle.Preset("classic")
	require.NoError(t, err)
	p, err := toggle.New(pal)
	require.NoError(t, err)
	mem, err := store.NewMemory(time.Hour, 100)
	require.NoError(t, err)
	t.Cleanup(func() { _ = mem.Close() })

	cookiePath := "/"
	if cfg.BaseURL != "" {
		cookiePath = cfg.BaseURL + "/"
	}
	sm := session.New(mem, p, session.Config{TTL: time.Hour, CookiePath: cookiePath})
	srv, err := New(sm, p, mem, cfg)
	require.NoError(t, err)
	return srv, mem
}

func newClient(t *testing.T) *http.Client {
	t.Helper()
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return &http.Client{Jar: jar, Timeout: 5 * time.Second}
}

func get(t *testing.T, client *http.Client, url string) (body string, code int) {
	t.Helper()
	resp, err := client.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(data), resp.StatusCode
}

func post(t *testing.T, client *http.Client, url string, htmx bool) (body string, code int) {
	t.Helper()
	req, err := http.NewRequest(http.MethodPost, url, strings.NewReader(""))
	require.NoError(t, err)
	if htmx {
		req.Header.Set("HX-Request", "true")
	}
	resp, err := client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(data), resp.StatusCode
}

func freePort(t *testing.T) int {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()
	return l.Addr().(*net.TCPAddr).Port
}
