package sprig

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// Atlas holds one or more page images and a map of named tiles.
type Atlas struct {
	// Pages contains the atlas page images indexed by page number.
	Pages []*ebiten.Image
	tiles map[string]*TileInfo
	debug bool
}

// Tile returns the named tile. Unknown names return a tile with no image,
// which renders as a solid rectangle; in debug mode the miss is logged.
func (a *Atlas) Tile(name string) *TileInfo {
	if t, ok := a.tiles[name]; ok {
		return t
	}
	if a.debug {
		log.Printf("sprig: atlas tile %q not found, using solid placeholder", name)
	}
	return &TileInfo{Size: Vec2{1, 1}}
}

// SetDebug toggles logging of missing tile names.
func (a *Atlas) SetDebug(enabled bool) {
	a.debug = enabled
}

// Len returns the number of named tiles.
func (a *Atlas) Len() int {
	return len(a.tiles)
}

// LoadAtlas parses TexturePacker JSON data and associates the given page images.
// Supports both the hash format (single "frames" object) and the array format
// ("textures" array with per-page frame lists).
func LoadAtlas(jsonData []byte, pages []*ebiten.Image) (*Atlas, error) {
	var probe struct {
		Frames   json.RawMessage `json:"frames"`
		Textures json.RawMessage `json:"textures"`
	}
	if err := json.Unmarshal(jsonData, &probe); err != nil {
		return nil, fmt.Errorf("parse atlas: %w", err)
	}

	atlas := &Atlas{
		Pages: pages,
		tiles: make(map[string]*TileInfo),
	}

	switch {
	case probe.Textures != nil:
		if err := parseArrayFormat(probe.Textures, atlas); err != nil {
			return nil, err
		}
	case probe.Frames != nil:
		if err := parseHashFrames(probe.Frames, 0, atlas); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("parse atlas: JSON has neither \"frames\" nor \"textures\" key")
	}
	return atlas, nil
}

type jsonRect struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

type jsonFrame struct {
	Frame jsonRect `json:"frame"`
}

type jsonTexturePage struct {
	Image  string               `json:"image"`
	Frames map[string]jsonFrame `json:"frames"`
}

// parseHashFrames parses the hash format: {"name": {frame...}, ...}
func parseHashFrames(raw json.RawMessage, page int, atlas *Atlas) error {
	var frames map[string]jsonFrame
	if err := json.Unmarshal(raw, &frames); err != nil {
		return fmt.Errorf("parse atlas frames: %w", err)
	}
	for name, f := range frames {
		atlas.tiles[name] = atlas.frameToTile(f, page)
	}
	return nil
}

// parseArrayFormat parses the array format: [{"image":"...", "frames":{...}}, ...]
func parseArrayFormat(raw json.RawMessage, atlas *Atlas) error {
	var textures []jsonTexturePage
	if err := json.Unmarshal(raw, &textures); err != nil {
		return fmt.Errorf("parse atlas textures: %w", err)
	}
	for i, tex := range textures {
		for name, f := range tex.Frames {
			atlas.tiles[name] = atlas.frameToTile(f, i)
		}
	}
	return nil
}

func (a *Atlas) frameToTile(f jsonFrame, page int) *TileInfo {
	var tex *ebiten.Image
	if page < len(a.Pages) {
		tex = a.Pages[page]
	}
	return &TileInfo{
		Pos:     Vec2{float64(f.Frame.X), float64(f.Frame.Y)},
		Size:    Vec2{float64(f.Frame.W), float64(f.Frame.H)},
		Texture: tex,
	}
}
