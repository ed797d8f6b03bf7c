package suitenav

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ghiac/suitenav/config"
	"github.com/ghiac/suitenav/store"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSuiteNav(t *testing.T, cfg *config.Config) (*SuiteNav, *gin.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	if cfg == nil {
		cfg = &config.Config{Store: config.StoreConfig{Backend: config.StoreMemory}}
	}
	sn, err := NewWithOptions(cfg, &Options{StateStore: store.NewMemoryStore()})
	require.NoError(t, err)
	t.Cleanup(func() { sn.Close() })

	router := gin.New()
	sn.RegisterRoutes(router)
	return sn, router
}

func doRequest(router *gin.Engine, method, target string, body string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	req.Host = "suite.local:11011"
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeURL(t *testing.T, w *httptest.ResponseRecorder) URLResponse {
	t.Helper()
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var resp URLResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func sessionCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range w.Result().Cookies() {
		if c.Name == SessionCookie {
			return c
		}
	}
	t.Fatalf("response did not set %s", SessionCookie)
	return nil
}

func TestURLQuery(t *testing.T) {
	_, router := newTestSuiteNav(t, nil)

	resp := decodeURL(t, doRequest(router, "GET", "/suitenav/url", ""))
	assert.Equal(t, "http://suite.local:11011/cask-cdap", resp.URL)
	assert.False(t, resp.Strict)

	resp = decodeURL(t, doRequest(router, "GET", "/suitenav/url?namespaceId=ns1&appId=a1&entityType=streams&entityId=s1&runId=r1", ""))
	assert.Equal(t, "http://suite.local:11011/cask-cdap/ns/ns1/apps/a1/streams/s1/runs/r1", resp.URL)

	resp = decodeURL(t, doRequest(router, "GET", "/suitenav/url?targetApp=login&redirectUrl=http%3A%2F%2Fx%2Fy%3Fa%3Db", ""))
	assert.Equal(t, "http://suite.local:11011/login?redirectUrl=http%3A%2F%2Fx%2Fy%3Fa%3Db", resp.URL)

	resp = decodeURL(t, doRequest(router, "GET", "/suitenav/url?targetApp=login&strict=true", ""))
	assert.Equal(t, "http://suite.local:11011/login", resp.URL)
	assert.True(t, resp.Strict)
}

func TestURLBody(t *testing.T) {
	_, router := newTestSuiteNav(t, nil)

	resp := decodeURL(t, doRequest(router, "POST", "/suitenav/url", `{"namespaceId":"default","appId":"myapp"}`))
	assert.Equal(t, "http://suite.local:11011/cask-cdap/ns/default/apps/myapp", resp.URL)

	resp = decodeURL(t, doRequest(router, "POST", "/suitenav/url", ""))
	assert.Equal(t, "http://suite.local:11011/cask-cdap", resp.URL)

	w := doRequest(router, "POST", "/suitenav/url", `{"namespaceId":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestURLPublicOriginAndStrictConfig(t *testing.T) {
	cfg := &config.Config{
		Store:      config.StoreConfig{Backend: config.StoreMemory},
		Public:     config.PublicConfig{Protocol: "https", Host: "cdap.example.com"},
		StrictURLs: true,
	}
	_, router := newTestSuiteNav(t, cfg)

	resp := decodeURL(t, doRequest(router, "GET", "/suitenav/url?redirectUrl=%2Fx", ""))
	assert.Equal(t, "https://cdap.example.com/cask-cdap?redirectUrl=%2Fx", resp.URL)
	assert.True(t, resp.Strict)
}

func TestSidebarToggle(t *testing.T) {
	_, router := newTestSuiteNav(t, nil)

	w := doRequest(router, "GET", "/suitenav/header/state", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"showSidebar":false}`, w.Body.String())
	cookie := sessionCookie(t, w)

	w = doRequest(router, "POST", "/suitenav/header/sidebar/toggle", "", cookie)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"showSidebar":true}`, w.Body.String())

	w = doRequest(router, "GET", "/suitenav/header", "", cookie)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `<div class="display-container" data-sidebar-backdrop>`)

	// another visitor is unaffected
	w = doRequest(router, "GET", "/suitenav/header", "")
	assert.Contains(t, w.Body.String(), `<div class="hide" data-sidebar-backdrop>`)

	w = doRequest(router, "POST", "/suitenav/header/sidebar/toggle", "", cookie)
	assert.JSONEq(t, `{"showSidebar":false}`, w.Body.String())
}

func TestSessionCookieReplacedWhenInvalid(t *testing.T) {
	_, router := newTestSuiteNav(t, nil)

	w := doRequest(router, "GET", "/suitenav/header/state", "", &http.Cookie{Name: SessionCookie, Value: "not-a-uuid"})
	cookie := sessionCookie(t, w)
	assert.NotEqual(t, "not-a-uuid", cookie.Value)
	assert.True(t, cookie.HttpOnly)
}

func TestHeaderFragment(t *testing.T) {
	_, router := newTestSuiteNav(t, nil)

	w := doRequest(router, "GET", "/suitenav/header?path=/cask-tracker/ns/default", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))

	body := w.Body.String()
	assert.Contains(t, body, `<div class="cask-header" data-toggle-url="/suitenav/header/sidebar/toggle">`)
	assert.Contains(t, body, `<li class="active"><a href="http://suite.local:11011/cask-tracker/ns/default">`)
	assert.NotContains(t, body, "<!DOCTYPE html>")
}

func TestIndexPage(t *testing.T) {
	_, router := newTestSuiteNav(t, nil)

	w := doRequest(router, "GET", "/suitenav", "")
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.True(t, strings.HasPrefix(body, "<!DOCTYPE html>"))
	assert.Contains(t, body, "Suite links")
	assert.Contains(t, body, "http://suite.local:11011/cask-hydrator")
	// sign-in sends the visitor back to this page
	assert.Contains(t, body, "login?redirectUrl=http%3A%2F%2Fsuite.local%3A11011%2Fsuitenav")
}

func TestIndexPageWithContext(t *testing.T) {
	_, router := newTestSuiteNav(t, nil)

	w := doRequest(router, "GET", "/suitenav?namespaceId=default&appId=PurchaseHistory", "")
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `<li class="breadcrumb-item"><a href="http://suite.local:11011/cask-cdap/ns/default">Namespace default</a></li>`)
	assert.Contains(t, body, `aria-current="page">App PurchaseHistory</li>`)
	assert.Contains(t, body, `<code class="url">http://suite.local:11011/cask-cdap/ns/default/apps/PurchaseHistory</code>`)
}

func TestNavJSON(t *testing.T) {
	_, router := newTestSuiteNav(t, nil)

	w := doRequest(router, "GET", "/suitenav/nav", "")
	require.Equal(t, http.StatusOK, w.Code)

	var view struct {
		Brand struct {
			Title string `json:"title"`
		} `json:"brand"`
		Sidebar []struct {
			Href string `json:"href"`
		} `json:"sidebar"`
		ShowSidebar bool `json:"showSidebar"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
	assert.Equal(t, "CDAP", view.Brand.Title)
	require.Len(t, view.Sidebar, 3)
	assert.Equal(t, "http://suite.local:11011/cask-cdap", view.Sidebar[0].Href)
	assert.False(t, view.ShowSidebar)
}

func TestGraphAndHealth(t *testing.T) {
	_, router := newTestSuiteNav(t, nil)

	w := doRequest(router, "GET", "/suitenav/graph", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Suite Navigation")

	w = doRequest(router, "GET", "/suitenav/health", "")
	require.Equal(t, http.StatusOK, w.Code)
	var health map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &health))
	assert.Equal(t, "ok", health["status"])
	assert.Equal(t, Version(), health["version"])
	assert.Equal(t, "http://suite.local:11011", health["origin"])
}
