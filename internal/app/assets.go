package app

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"sort"

	"seaplane/internal/sims/flight"
)

// ErrNoAssets is reported when the asset directory holds no usable images.
var ErrNoAssets = errors.New("no assets found")

// AssetBundle is the result of a background asset load.
type AssetBundle struct {
	Backgrounds []image.Image
	Piers       []image.Image
	Err         error
}

// Catalog describes the bundle to the sim. A bundle is ready only when both
// kinds of image are present.
func (b AssetBundle) Catalog() flight.AssetCatalog {
	return flight.AssetCatalog{
		Ready:       b.Err == nil && len(b.Backgrounds) > 0 && len(b.Piers) > 0,
		Backgrounds: len(b.Backgrounds),
		Piers:       len(b.Piers),
	}
}

// LoadAssets decodes bg*.png and pier*.png from dir on a goroutine. The
// returned channel yields exactly one bundle.
func LoadAssets(ctx context.Context, dir string) <-chan AssetBundle {
	out := make(chan AssetBundle, 1)
	go func() {
		defer close(out)
		var b AssetBundle
		b.Backgrounds, b.Err = loadPNGs(ctx, dir, "bg*.png")
		if b.Err == nil {
			b.Piers, b.Err = loadPNGs(ctx, dir, "pier*.png")
		}
		if b.Err == nil && (len(b.Backgrounds) == 0 || len(b.Piers) == 0) {
			b.Err = fmt.Errorf("%s: %w", dir, ErrNoAssets)
		}
		out <- b
	}()
	return out
}

func loadPNGs(ctx context.Context, dir, pattern string) ([]image.Image, error) {
	names, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	sort.Strings(names)
	imgs := make([]image.Image, 0, len(names))
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		img, err := decodePNG(name)
		if err != nil {
			return nil, err
		}
		imgs = append(imgs, img)
	}
	return imgs, nil
}

func decodePNG(name string) (image.Image, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open asset: %w", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", filepath.Base(name), err)
	}
	return img, nil
}
