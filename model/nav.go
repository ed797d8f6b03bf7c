package model

import (
	"github.com/ghiac/suitenav/navurl"
)

// NavItem is one link in the header. LinkTo is used as-is when set,
// otherwise the href is built from Context for the current origin.
type NavItem struct {
	Title   string                    `json:"title" yaml:"title" toml:"title"`
	LinkTo  string                    `json:"linkTo,omitempty" yaml:"linkTo,omitempty" toml:"linkTo,omitempty"`
	Icon    string                    `json:"icon,omitempty" yaml:"icon,omitempty" toml:"icon,omitempty"`
	Context *navurl.NavigationContext `json:"context,omitempty" yaml:"context,omitempty" toml:"context,omitempty"`
}

// Href returns the link target of the item on origin
func (i NavItem) Href(origin navurl.Origin, strict bool) string {
	if i.LinkTo != "" {
		return i.LinkTo
	}
	return navurl.Build(i.Context, origin, strict)
}

// Brand is the clickable title at the left of the header
type Brand struct {
	Title   string                    `json:"title" yaml:"title" toml:"title"`
	Icon    string                    `json:"icon,omitempty" yaml:"icon,omitempty" toml:"icon,omitempty"`
	Context *navurl.NavigationContext `json:"context,omitempty" yaml:"context,omitempty" toml:"context,omitempty"`
}

// NavDocument describes everything the header shows
type NavDocument struct {
	Brand   Brand     `json:"brand" yaml:"brand" toml:"brand"`
	Navbar  []NavItem `json:"navbar" yaml:"navbar" toml:"navbar"`
	Actions []NavItem `json:"actions" yaml:"actions" toml:"actions"`
	Sidebar []NavItem `json:"sidebar" yaml:"sidebar" toml:"sidebar"`
}

// DefaultBrandTitle and DefaultBrandIcon are used when a document leaves them empty
const (
	DefaultBrandTitle = "CDAP"
	DefaultBrandIcon  = "icon-fist"
)

// DefaultNavDocument returns the header of the main app
func DefaultNavDocument() *NavDocument {
	return &NavDocument{
		Brand: Brand{
			Title: DefaultBrandTitle,
			Icon:  DefaultBrandIcon,
		},
		Navbar: []NavItem{
			{Title: "Overview", Icon: "bi-grid", Context: &navurl.NavigationContext{NamespaceID: "default"}},
			{Title: "Pipelines", Icon: "bi-diagram-3", Context: &navurl.NavigationContext{TargetApp: navurl.HydratorApp, NamespaceID: "default"}},
			{Title: "Metadata", Icon: "bi-tags", Context: &navurl.NavigationContext{TargetApp: navurl.TrackerApp, NamespaceID: "default"}},
		},
		Actions: []NavItem{
			{Title: "Sign in", Icon: "bi-box-arrow-in-right", Context: &navurl.NavigationContext{TargetApp: navurl.LoginApp}},
		},
		Sidebar: []NavItem{
			{Title: "CDAP", Icon: "bi-house", Context: &navurl.NavigationContext{TargetApp: navurl.DefaultTargetApp}},
			{Title: "Hydrator", Icon: "bi-diagram-3", Context: &navurl.NavigationContext{TargetApp: navurl.HydratorApp}},
			{Title: "Tracker", Icon: "bi-tags", Context: &navurl.NavigationContext{TargetApp: navurl.TrackerApp}},
		},
	}
}

// ApplyDefaults fills the brand when a loaded document leaves it empty
func (d *NavDocument) ApplyDefaults() {
	if d.Brand.Title == "" {
		d.Brand.Title = DefaultBrandTitle
	}
	if d.Brand.Icon == "" {
		d.Brand.Icon = DefaultBrandIcon
	}
}
