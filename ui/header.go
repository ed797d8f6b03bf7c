package ui

import (
	"fmt"
	"html/template"
	"strings"
)

// Header renders the fixed application header: brand, nav list, actions
// and the collapsible sidebar.
func Header(view HeaderView) string {
	var b strings.Builder

	fmt.Fprintf(&b, `<div class="cask-header" data-toggle-url="%s">
    <div class="navbar navbar-fixed-top">
        <nav class="navbar cdap">`, template.HTMLEscapeString(view.ToggleURL))
	b.WriteString(HeaderBrand(view.Brand))
	b.WriteString(HeaderNavbarList(view.Navbar))
	b.WriteString(HeaderActions(view.Actions))
	b.WriteString(`
        </nav>
    </div>`)
	b.WriteString(HeaderSidebar(view.Sidebar, view.SidebarClass()))
	b.WriteString(`
</div>`)

	return b.String()
}

// HeaderBrand renders the brand; clicking it toggles the sidebar
func HeaderBrand(brand ResolvedItem) string {
	return fmt.Sprintf(`
            <div class="brand-header">
                <button type="button" class="navbar-brand" data-toggle-sidebar title="%s">
                    <span class="fa %s"></span>
                    <span class="brand-title">%s</span>
                </button>
                <a class="brand-home" href="%s" aria-label="%s home"><i class="bi bi-house-door"></i></a>
            </div>`,
		template.HTMLEscapeString(brand.Title),
		template.HTMLEscapeString(brand.Icon),
		template.HTMLEscapeString(brand.Title),
		template.HTMLEscapeString(brand.Href),
		template.HTMLEscapeString(brand.Title))
}

// HeaderNavbarList renders the nav list, marking the active item
func HeaderNavbarList(items []ResolvedItem) string {
	html := `
            <ul class="navbar-list">`
	for _, item := range items {
		active := ""
		if item.Active {
			active = ` class="active"`
		}
		html += fmt.Sprintf(`
                <li%s><a href="%s">%s%s</a></li>`,
			active, template.HTMLEscapeString(item.Href), icon(item.Icon), template.HTMLEscapeString(item.Title))
	}
	html += `
            </ul>`
	return html
}

// HeaderActions renders the action links at the right of the header
func HeaderActions(items []ResolvedItem) string {
	if len(items) == 0 {
		return ""
	}
	html := `
            <ul class="navbar-actions">`
	for _, item := range items {
		html += fmt.Sprintf(`
                <li><a class="btn btn-sm btn-light" href="%s">%s%s</a></li>`,
			template.HTMLEscapeString(item.Href), icon(item.Icon), template.HTMLEscapeString(item.Title))
	}
	html += `
            </ul>`
	return html
}

// HeaderSidebar renders the sidebar inside its backdrop. Clicks on the
// backdrop close it, clicks inside the panel do not.
func HeaderSidebar(items []ResolvedItem, containerClass string) string {
	html := fmt.Sprintf(`
    <div class="%s" data-sidebar-backdrop>
        <aside class="header-sidebar" data-sidebar-panel>
            <div class="header-sidebar-title">Applications</div>
            <nav class="header-sidebar-nav">`, template.HTMLEscapeString(containerClass))
	for _, item := range items {
		active := ""
		if item.Active {
			active = " active"
		}
		html += fmt.Sprintf(`
                <a class="header-sidebar-link%s" href="%s">%s<span>%s</span></a>`,
			active, template.HTMLEscapeString(item.Href), icon(item.Icon), template.HTMLEscapeString(item.Title))
	}
	html += `
            </nav>
        </aside>
    </div>`
	return html
}

func icon(name string) string {
	if name == "" {
		return ""
	}
	return fmt.Sprintf(`<i class="bi %s me-1"></i>`, template.HTMLEscapeString(name))
}
