package navurl

import (
	"net/http"
	"strings"
)

// Origin is the serving origin the suite is reached on
type Origin struct {
	// Protocol with trailing colon, e.g. "https:"
	Protocol string
	Host     string
}

// URL builds the lenient absolute URL for ctx on this origin
func (o Origin) URL(ctx *NavigationContext) string {
	return BuildAbsoluteURL(ctx, o.Protocol, o.Host)
}

// String returns "<protocol>//<host>"
func (o Origin) String() string {
	return o.Protocol + "//" + o.Host
}

// NormalizeProtocol appends the colon browsers report as part of the scheme
func NormalizeProtocol(p string) string {
	p = strings.TrimSpace(p)
	if p == "" || strings.HasSuffix(p, ":") {
		return p
	}
	return p + ":"
}

// OriginFromRequest derives the origin a browser used to reach r.
// X-Forwarded-Proto and X-Forwarded-Host win over the connection itself.
func OriginFromRequest(r *http.Request) Origin {
	proto := "http"
	if r.TLS != nil {
		proto = "https"
	}
	if fwd := firstHeaderValue(r.Header.Get("X-Forwarded-Proto")); fwd != "" {
		proto = fwd
	}

	host := r.Host
	if fwd := firstHeaderValue(r.Header.Get("X-Forwarded-Host")); fwd != "" {
		host = fwd
	}

	return Origin{Protocol: NormalizeProtocol(strings.ToLower(proto)), Host: host}
}

// firstHeaderValue returns the first entry of a comma-separated proxy header
func firstHeaderValue(v string) string {
	if i := strings.IndexByte(v, ','); i >= 0 {
		v = v[:i]
	}
	return strings.TrimSpace(v)
}
