package server

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benbjohnson/cssengine/internal/config"
)

func newTestServer(t *testing.T) (*Server, *bytes.Buffer) {
	t.Helper()
	cfg := &config.Config{Mode: "forgiving"}
	cfg.Server.Addr = ":0"
	cfg.Server.MaxBody = 4096
	cfg.Log.Level = "info"
	cfg.Log.Format = "text"
	cfg.Log.Color = "never"
	require.NoError(t, cfg.Validate())

	var buf bytes.Buffer
	return New(cfg, slog.New(slog.NewTextHandler(&buf, nil))), &buf
}

func post(t *testing.T, s *Server, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var b []byte
	switch body := body.(type) {
	case string:
		b = []byte(body)
	default:
		var err error
		b, err = json.Marshal(body)
		require.NoError(t, err)
	}

	r := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(b))
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.ServeHTTP(w, r)
	return w
}

func decodeBody[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(w.Body).Decode(&v))
	return v
}

// Ensure that the health endpoint responds and requests are logged.
func TestServer_Health(t *testing.T) {
	s, logs := newTestServer(t)
	w := httptest.NewRecorder()
	s.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"healthy"}`, w.Body.String())
	assert.Contains(t, logs.String(), "request completed")
	assert.Contains(t, logs.String(), "path=/health")
}

// Ensure that a stylesheet is checked and its errors reported.
func TestServer_Check(t *testing.T) {
	s, _ := newTestServer(t)

	w := post(t, s, "/api/check", CheckRequest{Source: "a { color: red }\n@import \"x.css\";"})
	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody[CheckResponse](t, w)
	assert.True(t, resp.Ok)
	assert.Equal(t, 1, resp.Rules)
	assert.Equal(t, 1, resp.AtRules)
	assert.Empty(t, resp.Errors)
	_, err := uuid.Parse(resp.ID)
	assert.NoError(t, err)

	w = post(t, s, "/api/check", CheckRequest{Source: "a {\n  colr: red;\n}"})
	require.Equal(t, http.StatusOK, w.Code)
	resp = decodeBody[CheckResponse](t, w)
	assert.False(t, resp.Ok)
	require.Len(t, resp.Errors, 1)
	assert.Equal(t, Diagnostic{Kind: "UnknownProperty", Line: 2, Column: 3, Message: resp.Errors[0].Message}, resp.Errors[0])

	w = post(t, s, "/api/check", CheckRequest{Source: "a { b: \"x\n\" }"})
	require.Equal(t, http.StatusOK, w.Code)
	resp = decodeBody[CheckResponse](t, w)
	require.Len(t, resp.Errors, 1)
	assert.Equal(t, "BadString", resp.Errors[0].Kind)
	assert.True(t, resp.Errors[0].Fatal)
}

// Ensure that invalid requests are rejected.
func TestServer_BadRequest(t *testing.T) {
	s, _ := newTestServer(t)

	w := post(t, s, "/api/check", "{")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = post(t, s, "/api/check", CheckRequest{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeBody[ErrorResponse](t, w)
	assert.Equal(t, []string{"Source: required"}, resp.Details)

	w = post(t, s, "/api/check", CheckRequest{Source: "a{}", Mode: "lax"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = post(t, s, "/api/check", CheckRequest{Source: strings.Repeat("a", 8192)})
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)

	r := httptest.NewRequest(http.MethodPost, "/api/check", strings.NewReader("a{}"))
	r.Header.Set("Content-Type", "text/css")
	w = httptest.NewRecorder()
	s.ServeHTTP(w, r)
	assert.Equal(t, http.StatusUnsupportedMediaType, w.Code)
}

// Ensure that a stylesheet is pretty printed.
func TestServer_Format(t *testing.T) {
	s, _ := newTestServer(t)

	w := post(t, s, "/api/format", FormatRequest{Source: "a{color:RED}"})
	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody[FormatResponse](t, w)
	assert.True(t, resp.Ok)
	assert.Equal(t, "a {\n  color: red;\n}\n", resp.Output)
	assert.Empty(t, resp.Errors)

	w = post(t, s, "/api/format", FormatRequest{Source: "a { /* x"})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	resp = decodeBody[FormatResponse](t, w)
	assert.False(t, resp.Ok)
	require.NotEmpty(t, resp.Errors)
	assert.Equal(t, "UnterminatedComment", resp.Errors[len(resp.Errors)-1].Kind)
}

// Ensure that selectors are matched against a document.
func TestServer_Select(t *testing.T) {
	s, _ := newTestServer(t)
	const doc = `<ul><li class="a">1</li><li id="b">2</li></ul>`

	w := post(t, s, "/api/select", SelectRequest{HTML: doc, Selector: "UL > li, :bogus"})
	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody[SelectResponse](t, w)
	assert.True(t, resp.Ok)
	assert.Equal(t, "UL > li", resp.Selector)
	assert.Equal(t, []string{"li.a", "li#b"}, resp.Matches)
	require.Len(t, resp.Errors, 1)
	assert.Equal(t, "UnknownPseudoClass", resp.Errors[0].Kind)

	w = post(t, s, "/api/select", SelectRequest{HTML: doc, Selector: "li, :bogus", Mode: "strict"})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

// Ensure that embedded, posted and inline styles are applied.
func TestServer_Apply(t *testing.T) {
	s, _ := newTestServer(t)
	const doc = `<style>p { color: red }</style><p>1</p><p class="x" style="width: 0">2</p>`

	w := post(t, s, "/api/apply", ApplyRequest{HTML: doc, Source: ".x { color: blue }"})
	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody[ApplyResponse](t, w)
	assert.True(t, resp.Ok)
	assert.Empty(t, resp.Errors)
	assert.Equal(t, []AppliedElement{
		{Element: "p", Rules: []string{"p"}, Style: map[string]string{"color": "red"}},
		{Element: "p.x", Rules: []string{"p", ".x"}, Style: map[string]string{"color": "blue", "width": "0"}},
	}, resp.Elements)
}

// Ensure that a panicking handler is recovered.
func TestServer_Recovery(t *testing.T) {
	s, logs := newTestServer(t)
	s.router.Get("/panic", func(w http.ResponseWriter, r *http.Request) { panic("marker") })

	w := httptest.NewRecorder()
	s.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, logs.String(), "panic recovered")
}
