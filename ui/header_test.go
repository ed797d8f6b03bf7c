package ui

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/ghiac/suitenav/model"
	"github.com/ghiac/suitenav/navurl"
)

var testOrigin = navurl.Origin{Protocol: "http:", Host: "localhost:11011"}

func TestResolve(t *testing.T) {
	doc := model.DefaultNavDocument()
	state := model.NewHeaderState("s")

	view := Resolve(doc, state, ResolveOptions{
		Origin:      testOrigin,
		CurrentPath: "/cask-hydrator/ns/default",
		ToggleURL:   "/suitenav/header/sidebar/toggle",
	})

	if view.Brand.Title != "CDAP" || view.Brand.Href != "http://localhost:11011/cask-cdap" {
		t.Errorf("unexpected brand %+v", view.Brand)
	}
	if view.ShowSidebar {
		t.Error("sidebar should start closed")
	}
	if len(view.Navbar) != 3 {
		t.Fatalf("Expected 3 navbar items, got %d", len(view.Navbar))
	}
	if view.Navbar[0].Active {
		t.Error("Overview should not be active on the hydrator page")
	}
	if !view.Navbar[1].Active {
		t.Errorf("Pipelines should be active, href %s", view.Navbar[1].Href)
	}

	wantLogin := "http://localhost:11011/login?redirectUrl=" +
		navurl.EncodeURIComponent("http://localhost:11011/cask-hydrator/ns/default")
	if view.Actions[0].Href != wantLogin {
		t.Errorf("Expected login href %s, got %s", wantLogin, view.Actions[0].Href)
	}
	if doc.Actions[0].Context.RedirectURL != "" {
		t.Error("Resolve must not modify the document")
	}

	state.Toggle()
	view = Resolve(doc, state, ResolveOptions{Origin: testOrigin})
	if !view.ShowSidebar || view.SidebarClass() != "display-container" {
		t.Error("toggled state should open the sidebar")
	}
	if view.Actions[0].Href != "http://localhost:11011/login?" {
		t.Errorf("login without current page should keep the bare form, got %s", view.Actions[0].Href)
	}
}

func TestResolveStrict(t *testing.T) {
	view := Resolve(model.DefaultNavDocument(), nil, ResolveOptions{Origin: testOrigin, Strict: true})
	if view.Actions[0].Href != "http://localhost:11011/login" {
		t.Errorf("strict login href should have no dangling '?', got %s", view.Actions[0].Href)
	}
}

func TestResolveNilDocument(t *testing.T) {
	view := Resolve(nil, nil, ResolveOptions{Origin: testOrigin})
	if view.Brand.Title != model.DefaultBrandTitle {
		t.Errorf("nil document should fall back to the default header, got %+v", view.Brand)
	}
}

func TestHeader(t *testing.T) {
	doc := &model.NavDocument{
		Brand: model.Brand{Title: "<CDAP>", Icon: "icon-fist"},
		Navbar: []model.NavItem{
			{Title: "Overview", LinkTo: "/cask-cdap/ns/default"},
			{Title: "Query", LinkTo: "/cask-cdap/ns/default/explore?a=1&b=2"},
		},
		Sidebar: []model.NavItem{
			{Title: "Tracker", Context: &navurl.NavigationContext{TargetApp: navurl.TrackerApp}},
		},
	}
	view := Resolve(doc, nil, ResolveOptions{
		Origin:      testOrigin,
		CurrentPath: "/cask-cdap/ns/default",
		ToggleURL:   "/toggle",
	})
	html := Header(view)

	mustContain := []string{
		`<div class="cask-header" data-toggle-url="/toggle">`,
		`<div class="navbar navbar-fixed-top">`,
		`<nav class="navbar cdap">`,
		`&lt;CDAP&gt;`,
		`<span class="fa icon-fist"></span>`,
		`<li class="active"><a href="/cask-cdap/ns/default">Overview</a></li>`,
		`href="/cask-cdap/ns/default/explore?a=1&amp;b=2"`,
		`<div class="hide" data-sidebar-backdrop>`,
		`href="http://localhost:11011/cask-tracker"`,
	}
	for _, want := range mustContain {
		if !strings.Contains(html, want) {
			t.Errorf("header is missing %q\n%s", want, html)
		}
	}
	if strings.Contains(html, "<CDAP>") {
		t.Error("brand title must be escaped")
	}
	if strings.Contains(html, "navbar-actions") {
		t.Error("empty actions should not render a list")
	}
}

func TestHeaderComponent(t *testing.T) {
	view := Resolve(model.DefaultNavDocument(), nil, ResolveOptions{Origin: testOrigin})

	var buf bytes.Buffer
	if err := HeaderComponent(view).Render(context.Background(), &buf); err != nil {
		t.Fatalf("Failed to render component: %v", err)
	}
	if buf.String() != Header(view) {
		t.Error("component output should match Header")
	}

	buf.Reset()
	if err := PageComponent("Suite", view, "<p>hi</p>").Render(context.Background(), &buf); err != nil {
		t.Fatalf("Failed to render page: %v", err)
	}
	page := buf.String()
	if !strings.HasPrefix(page, "<!DOCTYPE html>") || !strings.Contains(page, "<p>hi</p>") {
		t.Errorf("unexpected page output: %s", page)
	}
	if !strings.Contains(page, "data-toggle-sidebar") {
		t.Error("page should include the header")
	}
}
