package suitenav

import (
	"errors"
	"fmt"
	"html/template"
	"io"
	"net/http"
	"strconv"

	"github.com/ghiac/suitenav/model"
	"github.com/ghiac/suitenav/navurl"
	"github.com/ghiac/suitenav/ui"
	"github.com/ghiac/suitenav/visualize"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	routeBase   = "/suitenav"
	routeToggle = routeBase + "/header/sidebar/toggle"

	// SessionCookie keys the header state of a visitor
	SessionCookie = "suitenav_session"

	sessionKey = "suitenav.session"
)

// RegisterRoutes registers HTTP routes on the given gin.Engine
// Routes: /suitenav, /suitenav/header, /suitenav/url, /suitenav/nav, /suitenav/graph, /suitenav/health
func (sn *SuiteNav) RegisterRoutes(router *gin.Engine) {
	group := router.Group(routeBase, sessionMiddleware())
	group.GET("", sn.handleIndex)
	group.GET("/header", sn.handleHeader)
	group.GET("/header/state", sn.handleHeaderState)
	group.POST("/header/sidebar/toggle", sn.handleToggleSidebar)
	group.GET("/url", sn.handleURLQuery)
	group.POST("/url", sn.handleURLBody)
	group.GET("/nav", sn.handleNav)
	group.GET("/graph", sn.handleGraph)
	group.GET("/health", sn.handleHealth)
}

// sessionMiddleware makes sure every visitor carries a session cookie
func sessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(SessionCookie)
		if err != nil || uuid.Validate(sessionID) != nil {
			sessionID = model.NewSessionID()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(SessionCookie, sessionID, 0, "/", "", c.Request.TLS != nil, true)
		}
		c.Set(sessionKey, sessionID)
		c.Next()
	}
}

func sessionID(c *gin.Context) string {
	return c.GetString(sessionKey)
}

// strictParam reads the strict query flag; invalid values count as false
func strictParam(c *gin.Context) bool {
	strict, err := strconv.ParseBool(c.DefaultQuery("strict", "false"))
	return err == nil && strict
}

// handleIndex renders a shell page with the header and the links it resolves to
func (sn *SuiteNav) handleIndex(c *gin.Context) {
	strict := strictParam(c)
	view, err := sn.View(c.Request, sessionID(c), c.Request.URL.Path, strict)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}

	// ?namespaceId=...&appId=... shows where that context leads
	var nc navurl.NavigationContext
	if err := c.ShouldBindQuery(&nc); err != nil {
		c.JSON(400, gin.H{"error": fmt.Sprintf("Invalid query: %v", err)})
		return
	}

	content := ""
	if !nc.IsZero() {
		origin := sn.Origin(c.Request)
		content += ui.CardStart("Context", "signpost-split") +
			ui.Breadcrumb(ui.ContextBreadcrumb(&nc, origin, strict || sn.cfg.StrictURLs)) +
			fmt.Sprintf(`<code class="url">%s</code>`, template.HTMLEscapeString(sn.BuildURL(&nc, origin, strict))) +
			ui.CardEnd()
	}

	content += ui.CardStart("Suite links", "link-45deg") + `
        <table class="table mb-0">
            <thead><tr><th>Section</th><th>Title</th><th>URL</th></tr></thead>
            <tbody>`
	sections := []struct {
		name  string
		items []ui.ResolvedItem
	}{
		{"Navbar", view.Navbar},
		{"Actions", view.Actions},
		{"Sidebar", view.Sidebar},
	}
	for _, s := range sections {
		for _, item := range s.items {
			content += fmt.Sprintf(`
                <tr><td>%s</td><td>%s</td><td><code class="url">%s</code></td></tr>`,
				s.name, template.HTMLEscapeString(item.Title), template.HTMLEscapeString(item.Href))
		}
	}
	content += `
            </tbody>
        </table>` + ui.CardEnd()

	c.Status(http.StatusOK)
	c.Header("Content-Type", "text/html; charset=utf-8")
	if err := ui.PageComponent(view.Brand.Title, view, content).Render(c.Request.Context(), c.Writer); err != nil {
		c.Error(err)
	}
}

// handleHeader renders the header fragment for embedding. ?path= marks the active item.
func (sn *SuiteNav) handleHeader(c *gin.Context) {
	view, err := sn.View(c.Request, sessionID(c), c.Query("path"), strictParam(c))
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusOK)
	c.Header("Content-Type", "text/html; charset=utf-8")
	if err := ui.HeaderComponent(view).Render(c.Request.Context(), c.Writer); err != nil {
		c.Error(err)
	}
}

// handleHeaderState returns the header state of the visitor
func (sn *SuiteNav) handleHeaderState(c *gin.Context) {
	state, err := sn.HeaderState(sessionID(c))
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, gin.H{"showSidebar": state.ShowSidebar})
}

// handleToggleSidebar flips the sidebar of the visitor
func (sn *SuiteNav) handleToggleSidebar(c *gin.Context) {
	state, err := sn.ToggleSidebar(sessionID(c))
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, gin.H{"showSidebar": state.ShowSidebar})
}

// URLResponse is returned by the URL endpoints
type URLResponse struct {
	URL    string `json:"url"`
	Strict bool   `json:"strict"`
}

// handleURLQuery builds a URL from query parameters
func (sn *SuiteNav) handleURLQuery(c *gin.Context) {
	var nc navurl.NavigationContext
	if err := c.ShouldBindQuery(&nc); err != nil {
		c.JSON(400, gin.H{"error": fmt.Sprintf("Invalid query: %v", err)})
		return
	}
	sn.respondURL(c, &nc)
}

// handleURLBody builds a URL from a JSON body; an empty body means an empty context
func (sn *SuiteNav) handleURLBody(c *gin.Context) {
	var nc navurl.NavigationContext
	if err := c.ShouldBindJSON(&nc); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(400, gin.H{"error": fmt.Sprintf("Invalid request: %v", err)})
		return
	}
	sn.respondURL(c, &nc)
}

func (sn *SuiteNav) respondURL(c *gin.Context, nc *navurl.NavigationContext) {
	strict := strictParam(c) || sn.cfg.StrictURLs
	c.JSON(200, URLResponse{
		URL:    sn.BuildURL(nc, sn.Origin(c.Request), strict),
		Strict: strict,
	})
}

// handleNav returns the resolved header as JSON
func (sn *SuiteNav) handleNav(c *gin.Context) {
	view, err := sn.View(c.Request, sessionID(c), c.Query("path"), strictParam(c))
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, view)
}

// handleGraph renders the navigation map
func (sn *SuiteNav) handleGraph(c *gin.Context) {
	gv := visualize.NewGraphVisualizer(sn.repo.Current(), sn.Origin(c.Request), strictParam(c) || sn.cfg.StrictURLs)

	c.Status(http.StatusOK)
	c.Header("Content-Type", "text/html; charset=utf-8")
	if err := gv.Render(c.Writer, "Suite Navigation"); err != nil {
		c.Error(err)
	}
}

// handleHealth handles health check requests
func (sn *SuiteNav) handleHealth(c *gin.Context) {
	c.JSON(200, gin.H{
		"status":   "ok",
		"version":  Version(),
		"navFile":  sn.repo.Path(),
		"loadedAt": sn.repo.LoadedAt(),
		"store":    sn.cfg.Store.Backend,
		"origin":   sn.Origin(c.Request).String(),
	})
}
