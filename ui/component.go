package ui

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// HeaderComponent wraps Header for templ-based pages
func HeaderComponent(view HeaderView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, Header(view))
		return err
	})
}

// PageComponent wraps RenderPage for templ-based handlers
func PageComponent(title string, view HeaderView, content string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, RenderPage(title, Header(view), content))
		return err
	})
}
