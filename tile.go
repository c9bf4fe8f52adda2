package sprig

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// TileInfo identifies a sprite region inside a texture, in pixels. Physics
// never looks inside it.
type TileInfo struct {
	Pos     Vec2 // top-left corner of the region, pixels
	Size    Vec2 // region size, pixels
	Texture *ebiten.Image
	Padding float64 // gutter around each tile in a padded sheet
}

// NewTile returns the tile at index in a sheet of size-sized cells laid out
// left to right, top to bottom. A nil texture yields a tile with no image;
// such tiles render as solid rectangles.
func NewTile(index int, size Vec2, tex *ebiten.Image, padding ...float64) *TileInfo {
	pad := 0.0
	if len(padding) > 0 {
		pad = padding[0]
	}
	t := &TileInfo{Size: size, Texture: tex, Padding: pad}
	if tex == nil || size.X <= 0 {
		return t
	}
	stride := size.X + 2*pad
	cols := int(float64(tex.Bounds().Dx()) / stride)
	if cols < 1 {
		cols = 1
	}
	col := index % cols
	row := index / cols
	t.Pos = Vec2{
		X: pad + float64(col)*stride,
		Y: pad + float64(row)*(size.Y+2*pad),
	}
	return t
}

// Frame returns the tile n cells to the right, for strip animations.
func (t *TileInfo) Frame(n int) *TileInfo {
	return t.Offset(Vec2{X: float64(n) * (t.Size.X + 2*t.Padding)})
}

// Offset returns a copy of the tile shifted by offset pixels.
func (t *TileInfo) Offset(offset Vec2) *TileInfo {
	c := *t
	c.Pos = c.Pos.Add(offset)
	return &c
}

// image returns the sub-image for the tile, or nil when it has no texture.
func (t *TileInfo) image() *ebiten.Image {
	if t == nil || t.Texture == nil {
		return nil
	}
	r := image.Rect(
		int(t.Pos.X), int(t.Pos.Y),
		int(t.Pos.X+t.Size.X), int(t.Pos.Y+t.Size.Y),
	)
	return t.Texture.SubImage(r).(*ebiten.Image)
}
