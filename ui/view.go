package ui

import (
	"strings"

	"github.com/ghiac/suitenav/model"
	"github.com/ghiac/suitenav/navurl"
)

// ResolvedItem is a nav item with its href computed for one request
type ResolvedItem struct {
	Title  string `json:"title"`
	Icon   string `json:"icon,omitempty"`
	Href   string `json:"href"`
	Active bool   `json:"active,omitempty"`
}

// HeaderView is everything needed to render the header once
type HeaderView struct {
	Brand       ResolvedItem   `json:"brand"`
	Navbar      []ResolvedItem `json:"navbar"`
	Actions     []ResolvedItem `json:"actions"`
	Sidebar     []ResolvedItem `json:"sidebar"`
	ShowSidebar bool           `json:"showSidebar"`
	// ToggleURL receives a POST when the brand or the backdrop is clicked
	ToggleURL string `json:"toggleUrl,omitempty"`
}

// ResolveOptions carries the per-request inputs of Resolve
type ResolveOptions struct {
	Origin      navurl.Origin
	CurrentPath string
	Strict      bool
	ToggleURL   string
}

// Resolve turns a nav document and a header state into a HeaderView.
// A login action without a redirect gets the current page as redirectUrl.
func Resolve(doc *model.NavDocument, state *model.HeaderState, opts ResolveOptions) HeaderView {
	if doc == nil {
		doc = model.DefaultNavDocument()
	}

	view := HeaderView{
		Brand: ResolvedItem{
			Title: doc.Brand.Title,
			Icon:  doc.Brand.Icon,
			Href:  navurl.Build(doc.Brand.Context, opts.Origin, opts.Strict),
		},
		Navbar:      resolveItems(doc.Navbar, opts),
		Actions:     resolveItems(withLoginRedirect(doc.Actions, opts), opts),
		Sidebar:     resolveItems(doc.Sidebar, opts),
		ShowSidebar: state != nil && state.ShowSidebar,
		ToggleURL:   opts.ToggleURL,
	}
	return view
}

// SidebarClass is the class of the sidebar container
func (v HeaderView) SidebarClass() string {
	if v.ShowSidebar {
		return "display-container"
	}
	return "hide"
}

func resolveItems(items []model.NavItem, opts ResolveOptions) []ResolvedItem {
	resolved := make([]ResolvedItem, 0, len(items))
	for _, item := range items {
		href := item.Href(opts.Origin, opts.Strict)
		resolved = append(resolved, ResolvedItem{
			Title:  item.Title,
			Icon:   item.Icon,
			Href:   href,
			Active: isActive(href, opts),
		})
	}
	return resolved
}

func withLoginRedirect(items []model.NavItem, opts ResolveOptions) []model.NavItem {
	if opts.CurrentPath == "" {
		return items
	}
	out := make([]model.NavItem, len(items))
	for i, item := range items {
		out[i] = item
		if item.LinkTo != "" || item.Context == nil {
			continue
		}
		if item.Context.TargetApp == navurl.LoginApp && item.Context.RedirectURL == "" {
			ctx := *item.Context
			ctx.RedirectURL = opts.Origin.String() + opts.CurrentPath
			out[i].Context = &ctx
		}
	}
	return out
}

// isActive reports whether href points at the page being rendered
func isActive(href string, opts ResolveOptions) bool {
	if opts.CurrentPath == "" {
		return false
	}
	path := strings.TrimPrefix(href, opts.Origin.String())
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	return path == opts.CurrentPath
}
