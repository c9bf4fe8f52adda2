package sprig

import (
	"cmp"
	"image/color"
	"math"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// --- White pixel singleton (no sync.Once; sprig is single-threaded) ---

var whitePixelImage *ebiten.Image

// ensureWhitePixel returns a lazily-initialized 1x1 white pixel image.
// Used for untextured tiles, rects and gradients.
func ensureWhitePixel() *ebiten.Image {
	if whitePixelImage == nil {
		whitePixelImage = ebiten.NewImage(1, 1)
		whitePixelImage.Fill(color.RGBA{R: 255, G: 255, B: 255, A: 255})
	}
	return whitePixelImage
}

// DrawContext draws world-space primitives onto a target through a camera.
// Draw calls have no return values and no effect on the simulation.
type DrawContext struct {
	Target *ebiten.Image
	Camera *Camera
	// Blend is applied to every image draw made through this context.
	Blend BlendMode
}

// applyColor scales op by a straight-alpha Color.
func applyColor(op *ebiten.ColorScale, c Color) {
	op.Scale(float32(c.R*c.A), float32(c.G*c.A), float32(c.B*c.A), float32(c.A))
}

// Tile draws tile centered at pos with the given world size, tint and
// clockwise rotation. A nil or texture-less tile draws a solid rect.
func (dc *DrawContext) Tile(pos, size Vec2, tile *TileInfo, c Color, angle float64, mirror bool) {
	img := tile.image()
	if img == nil {
		img = ensureWhitePixel()
	}
	b := img.Bounds()
	iw, ih := float64(b.Dx()), float64(b.Dy())
	if iw == 0 || ih == 0 {
		return
	}

	scale := dc.Camera.Scale()
	sx := size.X * scale / iw
	sy := size.Y * scale / ih
	if mirror {
		sx = -sx
	}

	var op ebiten.DrawImageOptions
	op.GeoM.Translate(-iw/2, -ih/2)
	op.GeoM.Scale(sx, sy)
	op.GeoM.Rotate(angle)
	sp := dc.Camera.WorldToScreen(pos)
	op.GeoM.Translate(sp.X, sp.Y)
	applyColor(&op.ColorScale, c)
	op.Blend = dc.Blend.EbitenBlend()
	dc.Target.DrawImage(img, &op)
}

// Rect draws a solid rectangle centered at pos.
func (dc *DrawContext) Rect(pos, size Vec2, c Color, angle float64) {
	dc.Tile(pos, size, nil, c, angle, false)
}

// ScreenRect draws a solid rectangle in screen pixels, centered at pos.
func (dc *DrawContext) ScreenRect(pos, size Vec2, c Color) {
	var op ebiten.DrawImageOptions
	op.GeoM.Scale(size.X, size.Y)
	op.GeoM.Translate(pos.X-size.X/2, pos.Y-size.Y/2)
	applyColor(&op.ColorScale, c)
	op.Blend = dc.Blend.EbitenBlend()
	dc.Target.DrawImage(ensureWhitePixel(), &op)
}

// RectGradient draws an axis-aligned rectangle centered at pos whose color
// goes from top to bottom.
func (dc *DrawContext) RectGradient(pos, size Vec2, top, bottom Color) {
	half := size.Scale(0.5)
	tl := dc.Camera.WorldToScreen(Vec2{pos.X - half.X, pos.Y + half.Y})
	br := dc.Camera.WorldToScreen(Vec2{pos.X + half.X, pos.Y - half.Y})

	vert := func(x, y float64, c Color) ebiten.Vertex {
		return ebiten.Vertex{
			DstX: float32(x), DstY: float32(y),
			SrcX: 0.5, SrcY: 0.5,
			ColorR: float32(c.R * c.A), ColorG: float32(c.G * c.A),
			ColorB: float32(c.B * c.A), ColorA: float32(c.A),
		}
	}
	verts := []ebiten.Vertex{
		vert(tl.X, tl.Y, top),
		vert(br.X, tl.Y, top),
		vert(br.X, br.Y, bottom),
		vert(tl.X, br.Y, bottom),
	}
	op := &ebiten.DrawTrianglesOptions{Blend: dc.Blend.EbitenBlend()}
	dc.Target.DrawTriangles(verts, []uint16{0, 1, 2, 0, 2, 3}, ensureWhitePixel(), op)
}

// Line draws a world-space segment; thickness is in world units.
func (dc *DrawContext) Line(a, b Vec2, thickness float64, c Color) {
	sa := dc.Camera.WorldToScreen(a)
	sb := dc.Camera.WorldToScreen(b)
	width := float32(math.Max(thickness*dc.Camera.Scale(), 1))
	vector.StrokeLine(dc.Target, float32(sa.X), float32(sa.Y), float32(sb.X), float32(sb.Y),
		width, c.toRGBA(), true)
}

// NineSlice draws tile stretched to a world-space rectangle while keeping
// its border (in tile pixels) at a fixed world size of border/camera scale.
// Without a texture it falls back to a solid rect.
func (dc *DrawContext) NineSlice(pos, size Vec2, tile *TileInfo, border float64, c Color) {
	img := tile.image()
	if img == nil || border <= 0 {
		dc.Rect(pos, size, c, 0)
		return
	}
	b := img.Bounds()
	bi := int(border)
	xs := [4]int{b.Min.X, b.Min.X + bi, b.Max.X - bi, b.Max.X}
	ys := [4]int{b.Min.Y, b.Min.Y + bi, b.Max.Y - bi, b.Max.Y}

	edge := border / dc.Camera.Scale()
	innerW := math.Max(size.X-2*edge, 0)
	innerH := math.Max(size.Y-2*edge, 0)
	colW := [3]float64{edge, innerW, edge}
	rowH := [3]float64{edge, innerH, edge}

	left := pos.X - size.X/2
	top := pos.Y + size.Y/2
	y := top
	for row := 0; row < 3; row++ {
		x := left
		for col := 0; col < 3; col++ {
			if xs[col+1] > xs[col] && ys[row+1] > ys[row] && colW[col] > 0 && rowH[row] > 0 {
				center := Vec2{x + colW[col]/2, y - rowH[row]/2}
				dc.Tile(center, Vec2{colW[col], rowH[row]}, &TileInfo{
					Pos:     Vec2{float64(xs[col]), float64(ys[row])},
					Size:    Vec2{float64(xs[col+1] - xs[col]), float64(ys[row+1] - ys[row])},
					Texture: tile.Texture,
				}, c, 0, false)
			}
			x += colW[col]
		}
		y -= rowH[row]
	}
}

// Text prints text with its top-left corner at a world-space point using the
// built-in debug font.
func (dc *DrawContext) Text(text string, pos Vec2) {
	sp := dc.Camera.WorldToScreen(pos)
	ebitenutil.DebugPrintAt(dc.Target, text, int(sp.X), int(sp.Y))
}

// Draw renders every live object, lowest RenderOrder first (ties in ID
// order), skipping objects outside the camera's visible bounds. Entities
// implementing Drawer render themselves.
func (w *World) Draw(screen *ebiten.Image) {
	dc := &DrawContext{Target: screen, Camera: w.camera}
	view := w.camera.VisibleBounds()

	w.drawBuf = append(w.drawBuf[:0], w.objects...)
	slices.SortStableFunc(w.drawBuf, func(a, b Entity) int {
		return cmp.Compare(a.Base().RenderOrder, b.Base().RenderOrder)
	})

	for _, e := range w.drawBuf {
		o := e.Base()
		if o.destroyed || !drawBounds(o).Intersects(view) {
			continue
		}
		dc.Blend = o.BlendMode
		if d, ok := e.(Drawer); ok {
			d.Draw(dc)
			continue
		}
		dc.Tile(o.Pos, o.Size, o.Tile, o.Color, o.Angle, o.Mirror)
	}
	clear(w.drawBuf)
	w.drawBuf = w.drawBuf[:0]
}

// drawBounds is a rotation-safe bounding box for culling.
func drawBounds(o *Object) Rect {
	if o.Angle == 0 {
		return o.Bounds()
	}
	r := o.Size.Abs().Length()
	return RectFromCenter(o.Pos, Vec2{r, r})
}
