// Package assets exposes template helpers for fingerprinted static assets.
package assets

import (
	"html/template"

	httpassets "github.com/hamzanaeem10/auto-suite-space/internal/http/assets"
)

// Options configures the asset template helpers.
type Options struct {
	Resolver    *httpassets.AssetResolver
	DevMode     bool
	CriticalCSS func() string
}

// Funcs returns the `asset` and `criticalCSS` template helpers. `asset`
// maps a logical name to its hashed production path (or the plain path in
// dev mode); `criticalCSS` inlines the above-the-fold stylesheet.
func Funcs(opts Options) template.FuncMap {
	return template.FuncMap{
		"asset": func(logicalName string) string {
			return httpassets.ResolveAsset(opts.Resolver, logicalName, opts.DevMode)
		},
		"criticalCSS": func() template.CSS {
			if opts.CriticalCSS == nil {
				return ""
			}
			// #nosec G203 - the critical CSS comes from our own build output, not user input
			return template.CSS(opts.CriticalCSS())
		},
	}
}
