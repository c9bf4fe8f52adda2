package sprig

import (
	"strings"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

const singlePageJSON = `{
  "frames": {
    "hero.png": {
      "frame": {"x": 0, "y": 0, "w": 64, "h": 64},
      "rotated": false,
      "trimmed": false,
      "sourceSize": {"w": 64, "h": 64}
    },
    "enemy.png": {
      "frame": {"x": 64, "y": 0, "w": 32, "h": 48},
      "rotated": false,
      "trimmed": false,
      "sourceSize": {"w": 32, "h": 48}
    }
  },
  "meta": {
    "image": "atlas.png",
    "size": {"w": 1024, "h": 1024}
  }
}`

const multiPageJSON = `{
  "textures": [
    {
      "image": "atlas-0.png",
      "frames": {
        "page0_sprite.png": {"frame": {"x": 0, "y": 0, "w": 64, "h": 64}}
      }
    },
    {
      "image": "atlas-1.png",
      "frames": {
        "page1_sprite.png": {"frame": {"x": 10, "y": 20, "w": 50, "h": 50}}
      }
    }
  ]
}`

func TestLoadAtlas_SinglePage(t *testing.T) {
	page := ebiten.NewImage(1024, 1024)
	atlas, err := LoadAtlas([]byte(singlePageJSON), []*ebiten.Image{page})
	if err != nil {
		t.Fatalf("LoadAtlas: %v", err)
	}
	if atlas.Len() != 2 {
		t.Errorf("tile count = %d, want 2", atlas.Len())
	}

	tile := atlas.Tile("enemy.png")
	if tile.Pos != (Vec2{64, 0}) || tile.Size != (Vec2{32, 48}) {
		t.Errorf("enemy.png = pos %v size %v, want {64 0} {32 48}", tile.Pos, tile.Size)
	}
	if tile.Texture != page {
		t.Error("enemy.png not bound to page 0")
	}
}

func TestLoadAtlas_MultiPage(t *testing.T) {
	p0 := ebiten.NewImage(128, 128)
	p1 := ebiten.NewImage(128, 128)
	atlas, err := LoadAtlas([]byte(multiPageJSON), []*ebiten.Image{p0, p1})
	if err != nil {
		t.Fatalf("LoadAtlas: %v", err)
	}
	tile := atlas.Tile("page1_sprite.png")
	if tile.Texture != p1 {
		t.Error("page1_sprite.png not bound to page 1")
	}
	if tile.Pos != (Vec2{10, 20}) {
		t.Errorf("Pos = %v, want {10 20}", tile.Pos)
	}
}

func TestLoadAtlas_MissingPages(t *testing.T) {
	atlas, err := LoadAtlas([]byte(multiPageJSON), nil)
	if err != nil {
		t.Fatalf("LoadAtlas: %v", err)
	}
	tile := atlas.Tile("page0_sprite.png")
	if tile.Texture != nil {
		t.Error("expected nil texture without pages")
	}
	if tile.image() != nil {
		t.Error("image() should be nil without a texture")
	}
}

func TestAtlas_MissingTileIsPlaceholder(t *testing.T) {
	atlas, err := LoadAtlas([]byte(singlePageJSON), nil)
	if err != nil {
		t.Fatal(err)
	}
	atlas.SetDebug(true)
	tile := atlas.Tile("nonexistent.png")
	if tile == nil || tile.Texture != nil || tile.Size != (Vec2{1, 1}) {
		t.Errorf("placeholder = %+v", tile)
	}
}

func TestLoadAtlas_Errors(t *testing.T) {
	tests := map[string]string{
		"syntax":   `{"frames":`,
		"no keys":  `{"meta":{}}`,
		"bad hash": `{"frames":[1,2]}`,
	}
	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := LoadAtlas([]byte(data), nil)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.HasPrefix(err.Error(), "parse atlas") {
				t.Errorf("error = %q", err)
			}
		})
	}
}

func TestNewTile(t *testing.T) {
	sheet := ebiten.NewImage(64, 32)

	tile := NewTile(5, Vec2{16, 16}, sheet)
	if tile.Pos != (Vec2{16, 16}) {
		t.Errorf("index 5 Pos = %v, want {16 16}", tile.Pos)
	}

	padded := NewTile(5, Vec2{16, 16}, sheet, 1)
	if padded.Pos != (Vec2{37, 19}) {
		t.Errorf("padded index 5 Pos = %v, want {37 19}", padded.Pos)
	}

	if next := tile.Frame(1); next.Pos != (Vec2{32, 16}) {
		t.Errorf("Frame(1) Pos = %v, want {32 16}", next.Pos)
	}
	if tile.Pos != (Vec2{16, 16}) {
		t.Error("Frame mutated the receiver")
	}

	bare := NewTile(3, Vec2{8, 8}, nil)
	if bare.Pos != (Vec2{}) || bare.image() != nil {
		t.Errorf("nil-texture tile = %+v", bare)
	}
}
