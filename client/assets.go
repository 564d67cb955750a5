package client

import (
	"github.com/hajimehoshi/ebiten/v2"

	"spacehunt/sprites"
)

type variant struct {
	id      sprites.ID
	flipped bool
	red     bool
}

// Images uploads sprite library images to the GPU on first use. The
// reddened variants are what ships show for a frame after a hit.
type Images struct {
	lib   *sprites.Library
	cache map[variant]*ebiten.Image
}

// NewImages creates an image cache over lib
func NewImages(lib *sprites.Library) *Images {
	return &Images{
		lib:   lib,
		cache: make(map[variant]*ebiten.Image),
	}
}

// Get returns the image for id, mirrored and reddened as asked
func (im *Images) Get(id sprites.ID, flipped, red bool) *ebiten.Image {
	key := variant{id: id, flipped: flipped, red: red}
	if img, ok := im.cache[key]; ok {
		return img
	}

	src := im.lib.MustImage(id)
	if flipped {
		src = sprites.FlipH(src)
	}
	if red {
		src = sprites.Reddened(src)
	}

	img := ebiten.NewImageFromImage(src)
	im.cache[key] = img
	return img
}
