// Package navurl builds absolute URLs for navigating between the apps of the suite.
//
// The main app and its satellites are separate web apps with independent routing
// served from the same host, so links between them have to be absolute:
//
//	<protocol>//<host>/<targetApp>[?]<query fragments><path fragments>
//
// The URL is assembled from whatever context is available; absent fields are skipped.
package navurl

import (
	"net/url"
	"strings"
)

const (
	// DefaultTargetApp is used when a context names no target app
	DefaultTargetApp = "cask-cdap"
	// LoginApp is the only target that opens a query string on its own
	LoginApp = "login"
	// HydratorApp is the pipeline studio satellite
	HydratorApp = "cask-hydrator"
	// TrackerApp is the metadata/lineage satellite
	TrackerApp = "cask-tracker"
)

// NavigationContext describes where to navigate. Every field is optional and
// the empty string means absent.
type NavigationContext struct {
	TargetApp   string `json:"targetApp,omitempty" yaml:"targetApp,omitempty" toml:"targetApp,omitempty" form:"targetApp"`
	RedirectURL string `json:"redirectUrl,omitempty" yaml:"redirectUrl,omitempty" toml:"redirectUrl,omitempty" form:"redirectUrl"`
	ClientID    string `json:"clientId,omitempty" yaml:"clientId,omitempty" toml:"clientId,omitempty" form:"clientId"`
	NamespaceID string `json:"namespaceId,omitempty" yaml:"namespaceId,omitempty" toml:"namespaceId,omitempty" form:"namespaceId"`
	AppID       string `json:"appId,omitempty" yaml:"appId,omitempty" toml:"appId,omitempty" form:"appId"`
	EntityType  string `json:"entityType,omitempty" yaml:"entityType,omitempty" toml:"entityType,omitempty" form:"entityType"`
	EntityID    string `json:"entityId,omitempty" yaml:"entityId,omitempty" toml:"entityId,omitempty" form:"entityId"`
	RunID       string `json:"runId,omitempty" yaml:"runId,omitempty" toml:"runId,omitempty" form:"runId"`
}

// IsZero reports whether no field is set
func (c *NavigationContext) IsZero() bool {
	return c == nil || *c == NavigationContext{}
}

// targetApp returns the target app with the default applied
func (c *NavigationContext) targetApp() string {
	if c == nil || c.TargetApp == "" {
		return DefaultTargetApp
	}
	return c.TargetApp
}

// BuildAbsoluteURL returns the absolute URL for ctx on the given origin.
// hostProtocol includes its trailing colon ("https:"), like location.protocol.
// A nil ctx is treated as a context with no fields set.
//
// The query fragments are appended without separators of their own: only the
// login target opens a query string, and clientId is always prefixed with '&'.
// For any other target a redirectUrl is glued straight onto the path. Existing
// links depend on this shape; use BuildStrictURL for well-formed output.
func BuildAbsoluteURL(ctx *NavigationContext, hostProtocol, host string) string {
	if ctx == nil {
		ctx = &NavigationContext{}
	}
	target := ctx.targetApp()

	var b strings.Builder
	b.WriteString(hostProtocol)
	b.WriteString("//")
	b.WriteString(host)
	b.WriteString("/")
	b.WriteString(target)

	if target == LoginApp {
		b.WriteString("?")
	}
	if ctx.RedirectURL != "" {
		b.WriteString("redirectUrl=")
		b.WriteString(EncodeURIComponent(ctx.RedirectURL))
	}
	if ctx.ClientID != "" {
		b.WriteString("&clientId=")
		b.WriteString(ctx.ClientID)
	}
	if ctx.NamespaceID != "" {
		b.WriteString("/ns/")
		b.WriteString(ctx.NamespaceID)
	}
	if ctx.AppID != "" {
		b.WriteString("/apps/")
		b.WriteString(ctx.AppID)
	}
	if ctx.EntityType != "" && ctx.EntityID != "" {
		b.WriteString("/")
		b.WriteString(ctx.EntityType)
		b.WriteString("/")
		b.WriteString(ctx.EntityID)
	}
	if ctx.RunID != "" {
		b.WriteString("/runs/")
		b.WriteString(ctx.RunID)
	}
	return b.String()
}

// BuildStrictURL is the well-formed counterpart of BuildAbsoluteURL. Path
// segments come first and are escaped, then redirectUrl and clientId form a
// regular query string. A login URL without parameters has no trailing '?'.
func BuildStrictURL(ctx *NavigationContext, hostProtocol, host string) string {
	if ctx == nil {
		ctx = &NavigationContext{}
	}

	segments := []string{ctx.targetApp()}
	if ctx.NamespaceID != "" {
		segments = append(segments, "ns", ctx.NamespaceID)
	}
	if ctx.AppID != "" {
		segments = append(segments, "apps", ctx.AppID)
	}
	if ctx.EntityType != "" && ctx.EntityID != "" {
		segments = append(segments, ctx.EntityType, ctx.EntityID)
	}
	if ctx.RunID != "" {
		segments = append(segments, "runs", ctx.RunID)
	}

	var b strings.Builder
	b.WriteString(hostProtocol)
	b.WriteString("//")
	b.WriteString(host)
	for _, s := range segments {
		b.WriteString("/")
		b.WriteString(url.PathEscape(s))
	}

	sep := "?"
	if ctx.RedirectURL != "" {
		b.WriteString(sep + "redirectUrl=" + EncodeURIComponent(ctx.RedirectURL))
		sep = "&"
	}
	if ctx.ClientID != "" {
		b.WriteString(sep + "clientId=" + EncodeURIComponent(ctx.ClientID))
	}
	return b.String()
}

// Build picks BuildStrictURL when strict is set and BuildAbsoluteURL otherwise
func Build(ctx *NavigationContext, origin Origin, strict bool) string {
	if strict {
		return BuildStrictURL(ctx, origin.Protocol, origin.Host)
	}
	return BuildAbsoluteURL(ctx, origin.Protocol, origin.Host)
}

// componentUnescaper restores the characters encodeURIComponent leaves alone
// but url.QueryEscape escapes.
var componentUnescaper = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// EncodeURIComponent escapes s the way JavaScript's encodeURIComponent does:
// everything except A-Z a-z 0-9 - _ . ! ~ * ' ( ) is percent-encoded.
func EncodeURIComponent(s string) string {
	return componentUnescaper.Replace(url.QueryEscape(s))
}
