package sprig

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

// ObjectState is the simulation-relevant state of one object.
type ObjectState struct {
	ID       uint64  `msgpack:"id"`
	Pos      Vec2    `msgpack:"pos"`
	Size     Vec2    `msgpack:"size"`
	Velocity Vec2    `msgpack:"vel"`
	Angle    float64 `msgpack:"angle"`
	Mass     float64 `msgpack:"mass"`
	Collide  bool    `msgpack:"collide"`
}

// WorldState is a point-in-time capture of a World.
type WorldState struct {
	Frame   uint64        `msgpack:"frame"`
	Gravity Vec2          `msgpack:"gravity"`
	Camera  Vec2          `msgpack:"camera"`
	Scale   float64       `msgpack:"scale"`
	Objects []ObjectState `msgpack:"objects"`
}

// State captures the world in registry (ID) order.
func (w *World) State() WorldState {
	st := WorldState{
		Frame:   w.frame,
		Gravity: w.gravity,
		Camera:  w.camera.Pos,
		Scale:   w.camera.scale,
		Objects: make([]ObjectState, 0, len(w.objects)),
	}
	for _, e := range w.objects {
		o := e.Base()
		st.Objects = append(st.Objects, ObjectState{
			ID:       o.ID,
			Pos:      o.Pos,
			Size:     o.Size,
			Velocity: o.Velocity,
			Angle:    o.Angle,
			Mass:     o.mass,
			Collide:  o.collide,
		})
	}
	return st
}

// Snapshot encodes State with msgpack. Floats are stored as float64, so two
// worlds with bit-identical state produce identical bytes.
func (w *World) Snapshot() ([]byte, error) {
	st := w.State()
	data, err := msgpack.Marshal(&st)
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	return data, nil
}

// DecodeSnapshot parses bytes produced by Snapshot.
func DecodeSnapshot(data []byte) (WorldState, error) {
	var st WorldState
	if err := msgpack.Unmarshal(data, &st); err != nil {
		return WorldState{}, fmt.Errorf("decode snapshot: %w", err)
	}
	return st, nil
}
