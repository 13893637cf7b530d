package devserver

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jaykit/jay/config"
	"github.com/jaykit/jay/dom"
	"github.com/jaykit/jay/element"
	"github.com/jaykit/jay/logging"
	"github.com/jaykit/jay/render"
)

func testConfig() *Config {
	return &Config{
		Host:         "127.0.0.1",
		Port:         "0",
		AllowOrigins: []string{"*"},
	}
}

// testApp builds a two-page app with a counter element that can be
// re-rendered over the stream.
func testApp() *render.App {
	app := render.New(render.WithLogger(logging.NewNop()))
	_ = app.Expose("counter", 1)

	home := func(element.Props) element.Component {
		return element.RenderFunc(func() ([]*dom.Node, error) {
			return app.Build("div", nil,
				element.Descriptor{
					Tag:      element.ElementTag("span"),
					Props:    element.Props{"id": "count"},
					Children: []any{"J{counter}"},
				})
		})
	}
	about := func(element.Props) element.Component {
		return element.RenderFunc(func() ([]*dom.Node, error) {
			return app.Build("div", nil, "about page")
		})
	}

	app.Configure(config.Config{
		Title: "test app",
		Pages: map[string]element.Factory{"/": home, "/about": about},
	})
	return app
}

func newTestServer(t *testing.T, factory AppFactory) *httptest.Server {
	t.Helper()
	srv := NewServer(testConfig(), factory, logging.NewNop())
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func get(t *testing.T, url string) (int, string) {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t, testApp)
	code, body := get(t, ts.URL+"/health")
	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, body, "healthy")
}

func TestPageRendering(t *testing.T) {
	ts := newTestServer(t, testApp)

	t.Run("root", func(t *testing.T) {
		code, body := get(t, ts.URL+"/page")
		assert.Equal(t, http.StatusOK, code)
		assert.Contains(t, body, `<span id="count">1</span>`)
		assert.Contains(t, body, "<title>test app</title>")
	})

	t.Run("named route", func(t *testing.T) {
		code, body := get(t, ts.URL+"/page?route=/about")
		assert.Equal(t, http.StatusOK, code)
		assert.Contains(t, body, "about page")
	})

	t.Run("unroutable app", func(t *testing.T) {
		empty := func() *render.App {
			return render.New(render.WithLogger(logging.NewNop()))
		}
		ts2 := newTestServer(t, empty)
		code, _ := get(t, ts2.URL+"/page?route=/ghost")
		assert.Equal(t, http.StatusNotFound, code)
	})
}

func TestMetricsEndpoint(t *testing.T) {
	ts := newTestServer(t, testApp)
	_, _ = get(t, ts.URL+"/page")

	code, body := get(t, ts.URL+"/metrics")
	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, body, "jay_renders_total")
	assert.Contains(t, body, "jay_stream_sessions 0")
}

func TestStream(t *testing.T) {
	ts := newTestServer(t, testApp)
	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/stream"

	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	if resp != nil {
		defer resp.Body.Close()
	}
	defer conn.Close()

	var reply streamReply
	require.NoError(t, conn.ReadJSON(&reply))
	assert.Equal(t, "ready", reply.Type)
	assert.NotEmpty(t, reply.Session)
	assert.Contains(t, reply.HTML, `<span id="count">1</span>`)

	t.Run("navigate", func(t *testing.T) {
		require.NoError(t, conn.WriteJSON(streamMessage{Type: "navigate", Fragment: "about"}))
		require.NoError(t, conn.ReadJSON(&reply))
		assert.Equal(t, "dom", reply.Type)
		assert.Contains(t, reply.HTML, "about page")
	})

	t.Run("key chord navigates back", func(t *testing.T) {
		require.NoError(t, conn.WriteJSON(streamMessage{Type: "key", Chord: "alt+left"}))
		require.NoError(t, conn.ReadJSON(&reply))
		assert.Equal(t, "dom", reply.Type)
		assert.Contains(t, reply.HTML, `id="count"`)
	})

	t.Run("expose then rerender", func(t *testing.T) {
		require.NoError(t, conn.WriteJSON(streamMessage{Type: "expose", Name: "counter", Value: 7}))
		require.NoError(t, conn.ReadJSON(&reply))
		assert.Equal(t, "ack", reply.Type)

		require.NoError(t, conn.WriteJSON(streamMessage{Type: "rerender", ID: "count"}))
		require.NoError(t, conn.ReadJSON(&reply))
		assert.Equal(t, "dom", reply.Type)
		assert.Contains(t, reply.HTML, `<span id="count">7</span>`)
	})

	t.Run("ping", func(t *testing.T) {
		require.NoError(t, conn.WriteJSON(streamMessage{Type: "ping"}))
		require.NoError(t, conn.ReadJSON(&reply))
		assert.Equal(t, "pong", reply.Type)
	})

	t.Run("unknown type", func(t *testing.T) {
		require.NoError(t, conn.WriteJSON(streamMessage{Type: "bogus"}))
		require.NoError(t, conn.ReadJSON(&reply))
		assert.Equal(t, "error", reply.Type)
	})
}
