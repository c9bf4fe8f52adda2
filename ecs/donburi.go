package ecs

import (
	"github.com/phanxgames/sprig"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// CollisionEventType is the Donburi event type for sprig contacts.
var CollisionEventType = events.NewEventType[sprig.CollisionEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world.
// Contacts are published to CollisionEventType and can be consumed with
// Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) sprig.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitCollision(event sprig.CollisionEvent) {
	CollisionEventType.Publish(s.world, event)
}
