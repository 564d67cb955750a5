package sprites

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpecSizeAppliesScale(t *testing.T) {
	w, h := MustLookup(BossDVD).Size()
	assert.Equal(t, 320, w)
	assert.Equal(t, 148, h)

	w, h = MustLookup(Noodle).Size()
	assert.Equal(t, 30, w)
	assert.Equal(t, 30, h)
}

func TestLookupUnknown(t *testing.T) {
	_, err := Lookup("does-not-exist")
	assert.Error(t, err)
}

func TestPaintEveryCatalogEntry(t *testing.T) {
	for _, id := range All() {
		spec := MustLookup(id)
		img := Paint(spec)
		w, h := spec.Size()
		require.Equal(t, w, img.Bounds().Dx(), id)
		require.Equal(t, h, img.Bounds().Dy(), id)

		opaque := 0
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				if img.RGBAAt(x, y).A > 0 {
					opaque++
				}
			}
		}
		assert.Greater(t, opaque, 0, "sprite %s is blank", id)
	}
}

func TestPlanetsHaveSpecs(t *testing.T) {
	planets := Planets()
	assert.Len(t, planets, 18)
	for _, id := range planets {
		_, err := Lookup(id)
		assert.NoError(t, err)
	}
}

func TestFlipH(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 3, 1))
	src.SetRGBA(0, 0, color.RGBA{255, 0, 0, 255})

	flipped := FlipH(src)
	assert.Equal(t, uint8(0), flipped.RGBAAt(0, 0).A)
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, flipped.RGBAAt(2, 0))
}

func TestReddenedKeepsSilhouette(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2, 1))
	src.SetRGBA(0, 0, color.RGBA{0, 0, 255, 255})

	red := Reddened(src)
	p := red.RGBAAt(0, 0)
	assert.Equal(t, uint8(255), p.A)
	assert.Greater(t, p.R, uint8(0))
	assert.Less(t, p.B, uint8(255))
	assert.Equal(t, uint8(0), red.RGBAAt(1, 0).A)
}

func TestLibraryFallsBackToPlaceholder(t *testing.T) {
	lib := NewLibrary("")
	img, err := lib.Image(Player)
	require.NoError(t, err)
	w, h := MustLookup(Player).Size()
	assert.Equal(t, image.Rect(0, 0, w, h), img.Bounds())

	again, err := lib.Image(Player)
	require.NoError(t, err)
	assert.Same(t, img, again)
}

func TestLibraryLoadsAndScalesOverride(t *testing.T) {
	dir := t.TempDir()
	src := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			src.SetRGBA(x, y, color.RGBA{0, 255, 0, 255})
		}
	}
	f, err := os.Create(filepath.Join(dir, string(Meatball)+".png"))
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, src))
	require.NoError(t, f.Close())

	img, err := NewLibrary(dir).Image(Meatball)
	require.NoError(t, err)
	assert.Equal(t, 24, img.Bounds().Dx())
	assert.Equal(t, color.RGBA{0, 255, 0, 255}, img.RGBAAt(12, 12))
}
