package visualize

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/ghiac/suitenav/model"
	"github.com/ghiac/suitenav/navurl"
)

// Node categories, in the order of createCategories
const (
	categoryBrand = iota
	categoryNavbar
	categoryAction
	categorySidebar
)

var categoryColors = []string{
	"#5470c6", // Brand - Blue
	"#91cc75", // Navbar - Green
	"#fac858", // Action - Yellow
	"#73c0de", // Sidebar - Light Blue
}

// GraphVisualizer draws the navigation map of the suite header
type GraphVisualizer struct {
	doc    *model.NavDocument
	origin navurl.Origin
	strict bool
}

// NewGraphVisualizer creates a new graph visualizer
func NewGraphVisualizer(doc *model.NavDocument, origin navurl.Origin, strict bool) *GraphVisualizer {
	if doc == nil {
		doc = model.DefaultNavDocument()
	}
	return &GraphVisualizer{
		doc:    doc,
		origin: origin,
		strict: strict,
	}
}

// GenerateGraph creates an ECharts graph with the brand at the centre and
// one node per header link, labelled with the URL it resolves to.
func (gv *GraphVisualizer) GenerateGraph(title string) *charts.Graph {
	graph := charts.NewGraph()
	graph.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: title,
			Subtitle: fmt.Sprintf("%d nav items, %d actions, %d apps on %s",
				len(gv.doc.Navbar), len(gv.doc.Actions), len(gv.doc.Sidebar), gv.origin.String()),
		}),
		charts.WithInitializationOpts(opts.Initialization{
			Width:  "1200px",
			Height: "800px",
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show: opts.Bool(true),
		}),
		charts.WithLegendOpts(opts.Legend{
			Show: opts.Bool(true),
		}),
	)

	nodes, links := gv.buildGraph()

	graph.AddSeries("suite-navigation", nodes, links,
		charts.WithGraphChartOpts(opts.GraphChart{
			Layout: "force",
			Roam:   opts.Bool(true),
			Force: &opts.GraphForce{
				Repulsion:  800,
				Gravity:    0.1,
				EdgeLength: 180,
			},
			Categories: gv.createCategories(),
		}),
		charts.WithLabelOpts(opts.Label{
			Show: opts.Bool(true),
		}),
		charts.WithLineStyleOpts(opts.LineStyle{
			Curveness: 0.2,
			Width:     2,
		}),
	)

	return graph
}

// buildGraph converts the nav document into graph nodes and brand->item links.
// Node names must be unique, so each carries its section and href.
func (gv *GraphVisualizer) buildGraph() ([]opts.GraphNode, []opts.GraphLink) {
	brandHref := navurl.Build(gv.doc.Brand.Context, gv.origin, gv.strict)
	brandName := fmt.Sprintf("%s\n%s", gv.doc.Brand.Title, brandHref)

	nodes := []opts.GraphNode{{
		Name:       brandName,
		Value:      float32(len(gv.doc.Navbar) + len(gv.doc.Actions) + len(gv.doc.Sidebar)),
		Category:   categoryBrand,
		SymbolSize: 60,
		ItemStyle:  gv.getNodeStyle(categoryBrand),
	}}
	links := make([]opts.GraphLink, 0)
	seen := map[string]bool{brandName: true}

	add := func(items []model.NavItem, category int) {
		for _, item := range items {
			name := fmt.Sprintf("%s\n%s", item.Title, item.Href(gv.origin, gv.strict))
			if !seen[name] {
				seen[name] = true
				nodes = append(nodes, opts.GraphNode{
					Name:       name,
					Value:      1,
					Category:   category,
					SymbolSize: 30,
					ItemStyle:  gv.getNodeStyle(category),
				})
			}
			links = append(links, opts.GraphLink{
				Source: brandName,
				Target: name,
				Value:  1,
			})
		}
	}
	add(gv.doc.Navbar, categoryNavbar)
	add(gv.doc.Actions, categoryAction)
	add(gv.doc.Sidebar, categorySidebar)

	return nodes, links
}

// createCategories creates category definitions for the graph
func (gv *GraphVisualizer) createCategories() []*opts.GraphCategory {
	names := []string{"Brand", "Navbar", "Action", "Sidebar"}
	categories := make([]*opts.GraphCategory, len(names))
	for i, name := range names {
		categories[i] = &opts.GraphCategory{
			Name:      name,
			ItemStyle: &opts.ItemStyle{Color: categoryColors[i]},
		}
	}
	return categories
}

// getNodeStyle returns the style for a node based on its category
func (gv *GraphVisualizer) getNodeStyle(category int) *opts.ItemStyle {
	if category >= len(categoryColors) {
		category = categoryNavbar
	}
	return &opts.ItemStyle{
		Color:       categoryColors[category],
		BorderColor: "#fff",
		BorderWidth: 2,
	}
}

// Render writes the graph as a standalone HTML page
func (gv *GraphVisualizer) Render(w io.Writer, title string) error {
	page := components.NewPage()
	page.PageTitle = title
	page.AddCharts(gv.GenerateGraph(title))
	if err := page.Render(w); err != nil {
		return fmt.Errorf("failed to render page: %w", err)
	}
	return nil
}
