package sprites

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/png"
	"log"
	"os"
	"path/filepath"

	xdraw "golang.org/x/image/draw"
)

// Library hands out sprite images, preferring files in an override
// directory and falling back to the procedural placeholders.
type Library struct {
	dir   string
	cache map[ID]*image.RGBA
}

// NewLibrary creates a library. An empty dir disables overrides.
func NewLibrary(dir string) *Library {
	return &Library{
		dir:   dir,
		cache: make(map[ID]*image.RGBA),
	}
}

// Image returns the scaled, unflipped sprite for id
func (l *Library) Image(id ID) (*image.RGBA, error) {
	if img, ok := l.cache[id]; ok {
		return img, nil
	}

	spec, err := Lookup(id)
	if err != nil {
		return nil, err
	}

	img, err := l.loadOverride(spec)
	if err != nil {
		log.Printf("sprite override for %s unusable, using placeholder: %v", id, err)
	}
	if img == nil {
		img = Paint(spec)
	}

	l.cache[id] = img
	return img, nil
}

// MustImage is Image for catalog constants
func (l *Library) MustImage(id ID) *image.RGBA {
	img, err := l.Image(id)
	if err != nil {
		panic(err)
	}
	return img
}

// loadOverride returns nil, nil when no override file exists
func (l *Library) loadOverride(spec Spec) (*image.RGBA, error) {
	if l.dir == "" {
		return nil, nil
	}

	for _, ext := range []string{".png", ".gif"} {
		path := filepath.Join(l.dir, string(spec.ID)+ext)
		f, err := os.Open(path)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to open %s: %w", path, err)
		}
		src, _, err := image.Decode(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to decode %s: %w", path, err)
		}
		w, h := spec.Size()
		return Scale(src, w, h), nil
	}
	return nil, nil
}

// Scale resizes src to w×h with nearest-neighbour sampling, keeping pixel art crisp
func Scale(src image.Image, w, h int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst
}

// FlipH mirrors an image left to right
func FlipH(src *image.RGBA) *image.RGBA {
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			dst.SetRGBA(b.Dx()-1-x, y, src.RGBAAt(b.Min.X+x, b.Min.Y+y))
		}
	}
	return dst
}

// Tint blends c at the given alpha over every visible pixel, keeping the
// source alpha so the silhouette is unchanged.
func Tint(src *image.RGBA, c color.RGBA, alpha uint8) *image.RGBA {
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	a := float64(alpha) / 255
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			p := src.RGBAAt(b.Min.X+x, b.Min.Y+y)
			if p.A == 0 {
				continue
			}
			// Work in straight alpha, then premultiply back
			pa := float64(p.A) / 255
			mix := func(ch uint8, t uint8) uint8 {
				straight := float64(ch) / pa
				return uint8((straight*(1-a) + float64(t)*a) * pa)
			}
			dst.SetRGBA(x, y, color.RGBA{
				R: mix(p.R, c.R),
				G: mix(p.G, c.G),
				B: mix(p.B, c.B),
				A: p.A,
			})
		}
	}
	return dst
}

// Reddened is the hit-flash variant of a sprite
func Reddened(src *image.RGBA) *image.RGBA {
	return Tint(src, color.RGBA{255, 0, 0, 255}, 100)
}
