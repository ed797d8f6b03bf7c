package ui

import (
	"fmt"
	"html/template"

	"github.com/ghiac/suitenav/navurl"
)

// BreadcrumbItem represents a breadcrumb navigation item
type BreadcrumbItem struct {
	Label  string
	URL    string
	Active bool
}

// ContextBreadcrumb lists every level of a navigation context, from the app
// down to the run, each linking to the URL of that level. The last one is active.
func ContextBreadcrumb(nc *navurl.NavigationContext, origin navurl.Origin, strict bool) []BreadcrumbItem {
	if nc == nil {
		nc = &navurl.NavigationContext{}
	}

	level := navurl.NavigationContext{TargetApp: nc.TargetApp}
	label := level.TargetApp
	if label == "" {
		label = navurl.DefaultTargetApp
	}
	items := []BreadcrumbItem{{Label: label, URL: navurl.Build(&level, origin, strict)}}

	push := func(label string) {
		ctx := level
		items = append(items, BreadcrumbItem{Label: label, URL: navurl.Build(&ctx, origin, strict)})
	}
	if nc.NamespaceID != "" {
		level.NamespaceID = nc.NamespaceID
		push("Namespace " + nc.NamespaceID)
	}
	if nc.AppID != "" {
		level.AppID = nc.AppID
		push("App " + nc.AppID)
	}
	if nc.EntityType != "" && nc.EntityID != "" {
		level.EntityType, level.EntityID = nc.EntityType, nc.EntityID
		push(nc.EntityType + " " + nc.EntityID)
	}
	if nc.RunID != "" {
		level.RunID = nc.RunID
		push("Run " + nc.RunID)
	}

	items[len(items)-1].Active = true
	return items
}

// Breadcrumb generates a Bootstrap breadcrumb navigation
func Breadcrumb(items []BreadcrumbItem) string {
	if len(items) == 0 {
		return ""
	}

	html := `<nav aria-label="breadcrumb" class="mb-4">
    <ol class="breadcrumb">`

	for _, item := range items {
		if item.Active {
			html += fmt.Sprintf(`
        <li class="breadcrumb-item active" aria-current="page">%s</li>`, template.HTMLEscapeString(item.Label))
		} else {
			html += fmt.Sprintf(`
        <li class="breadcrumb-item"><a href="%s">%s</a></li>`,
				template.HTMLEscapeString(item.URL), template.HTMLEscapeString(item.Label))
		}
	}

	html += `
    </ol>
</nav>`

	return html
}
