// Package ecs provides ECS adapters for hovertip.
package ecs

import (
	"github.com/phanxgames/hovertip"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// InteractionEventType is the Donburi event type for hovertip events.
// Subscribe to this in your ECS systems to receive hover and tooltip events.
var InteractionEventType = events.NewEventType[hovertip.InteractionEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EntityStore backed by a Donburi world.
// Events are published to InteractionEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) hovertip.EntityStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event hovertip.InteractionEvent) {
	InteractionEventType.Publish(s.world, event)
}
