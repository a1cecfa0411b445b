package audio

import (
	"github.com/lixenwraith/gravity-ship/engine"
	"github.com/lixenwraith/gravity-ship/event"
)

// Player is the playback surface the event handler needs
type Player interface {
	Play(SoundType) bool
}

// EventHandler maps session events to sound effects
type EventHandler struct {
	player Player
}

// NewEventHandler creates a handler playing through p
func NewEventHandler(p Player) *EventHandler {
	return &EventHandler{player: p}
}

// EventTypes implements event.Handler
func (h *EventHandler) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventShipDestroyed,
		event.EventPodCollected,
		event.EventPurchase,
		event.EventCoinsAwarded,
	}
}

// HandleEvent implements event.Handler
func (h *EventHandler) HandleEvent(_ *engine.Session, ev event.GameEvent) {
	switch ev.Type {
	case event.EventShipDestroyed:
		h.player.Play(SoundExplosion)
	case event.EventPodCollected:
		h.player.Play(SoundPickup)
	case event.EventCoinsAwarded:
		h.player.Play(SoundCoin)
	case event.EventPurchase:
		if p, ok := ev.Payload.(*event.PurchasePayload); ok && p.OK {
			h.player.Play(SoundPurchase)
		} else {
			h.player.Play(SoundReject)
		}
	}
}
