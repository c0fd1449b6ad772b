// Package assets resolves logical asset names to content-hashed filenames.
package assets

import (
	"encoding/json"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"sync"
	"time"
)

// AssetResolver resolves logical asset names to hashed filenames using manifest.json.
// A zero-value resolver is usable and falls back to logical names.
type AssetResolver struct {
	mu           sync.RWMutex
	manifest     map[string]string
	manifestPath string
	diskPath     string
	fsys         fs.FS
	lastModTime  time.Time
	logger       *slog.Logger
}

// NewAssetResolverFromDisk creates an asset resolver that reads the manifest from the local filesystem.
func NewAssetResolverFromDisk(manifestPath string) (*AssetResolver, error) {
	resolver := &AssetResolver{
		manifest:     make(map[string]string),
		manifestPath: manifestPath,
		diskPath:     manifestPath,
		logger:       slog.Default(),
	}
	return resolver, resolver.Reload()
}

// NewAssetResolverFromFS creates an asset resolver that reads the manifest from an fs.FS implementation.
func NewAssetResolverFromFS(fsys fs.FS, manifestPath string) (*AssetResolver, error) {
	resolver := &AssetResolver{
		manifest:     make(map[string]string),
		manifestPath: manifestPath,
		fsys:         fsys,
		logger:       slog.Default(),
	}
	return resolver, resolver.Reload()
}

// Reload synchronizes the in-memory manifest with the manifest file.
func (ar *AssetResolver) Reload() error {
	ar.mu.Lock()
	defer ar.mu.Unlock()
	return ar.loadManifestLocked()
}

// ReloadIfChanged reloads the manifest when the on-disk file has been updated.
// Used in dev mode where the frontend build rewrites the manifest.
func (ar *AssetResolver) ReloadIfChanged() {
	if ar == nil || ar.diskPath == "" {
		return
	}

	info, err := os.Stat(ar.diskPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			ar.mu.Lock()
			ar.manifest = make(map[string]string)
			ar.lastModTime = time.Time{}
			ar.mu.Unlock()
		}
		return
	}

	ar.mu.RLock()
	last := ar.lastModTime
	ar.mu.RUnlock()
	if !info.ModTime().After(last) {
		return
	}

	if err := ar.Reload(); err != nil {
		ar.logger.Warn("asset manifest reload failed", "path", ar.diskPath, "error", err)
	}
}

// Resolve maps a logical asset name (e.g. "js/app.js") to its hashed filename.
// Unknown names resolve to themselves so dev builds keep working without a manifest.
func (ar *AssetResolver) Resolve(name string) string {
	if ar == nil {
		return name
	}
	ar.mu.RLock()
	defer ar.mu.RUnlock()
	if hashed, ok := ar.manifest[name]; ok && hashed != "" {
		return hashed
	}
	return name
}

// ResolveAsset maps a logical asset name to its public /static/ URL, reloading
// the manifest in dev mode so rebuilt assets are picked up without a restart.
func ResolveAsset(resolver *AssetResolver, logicalName string, devMode bool) string {
	if resolver == nil {
		return "/static/" + logicalName
	}
	if devMode {
		resolver.ReloadIfChanged()
	}
	return "/static/" + resolver.Resolve(logicalName)
}

func (ar *AssetResolver) loadManifestLocked() error {
	var raw []byte
	var err error
	if ar.fsys != nil {
		raw, err = fs.ReadFile(ar.fsys, ar.manifestPath)
	} else {
		raw, err = os.ReadFile(ar.manifestPath)
	}
	if err != nil {
		return err
	}

	manifest := make(map[string]string)
	if err := json.Unmarshal(raw, &manifest); err != nil {
		return err
	}
	ar.manifest = manifest

	if ar.diskPath != "" {
		if info, statErr := os.Stat(ar.diskPath); statErr == nil {
			ar.lastModTime = info.ModTime()
		}
	}
	return nil
}
