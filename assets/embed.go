package assets

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"image"
	_ "image/png"
	"io/fs"
	"log"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"
)

//go:embed *.png
var assetsFS embed.FS

// ErrUnknownSprite is returned for a sprite name with no embedded sheet.
var ErrUnknownSprite = errors.New("unknown sprite")

// SpriteNames lists every embedded sprite sheet by name, sorted.
func SpriteNames() []string {
	entries, err := fs.Glob(assetsFS, "*.png")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e, path.Ext(e)))
	}
	sort.Strings(names)
	return names
}

// LoadFile loads an embedded asset by assets-relative path.
func LoadFile(path string) ([]byte, error) {
	return assetsFS.ReadFile(cleanAssetPath(path))
}

// LoadSprite decodes the sheet for a sprite name such as "bird".
func LoadSprite(name string) (image.Image, error) {
	file := cleanAssetPath(name)
	if !strings.HasSuffix(file, ".png") {
		file += ".png"
	}
	b, err := assetsFS.ReadFile(file)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("assets: %q: %w", name, ErrUnknownSprite)
		}
		return nil, fmt.Errorf("assets: read %q: %w", name, err)
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("assets: decode %q: %w", name, err)
	}
	return img, nil
}

// LoadSprites decodes the named sheets concurrently. It fails if any
// sheet fails; no partial result is returned.
func LoadSprites(names ...string) (map[string]image.Image, error) {
	var (
		g   errgroup.Group
		mu  sync.Mutex
		out = make(map[string]image.Image, len(names))
	)
	for _, name := range names {
		g.Go(func() error {
			img, err := LoadSprite(name)
			if err != nil {
				return err
			}
			mu.Lock()
			out[name] = img
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	for _, name := range names {
		b := out[name].Bounds()
		log.Printf("assets: loaded %s (%dx%d)", name, b.Dx(), b.Dy())
	}
	return out, nil
}

func cleanAssetPath(p string) string {
	if p == "" {
		return ""
	}
	if filepath.IsAbs(p) {
		s := filepath.ToSlash(p)
		if idx := strings.LastIndex(s, "/assets/"); idx >= 0 {
			return s[idx+len("/assets/"):]
		}
		return filepath.Base(p)
	}
	return strings.TrimPrefix(filepath.ToSlash(p), "assets/")
}
