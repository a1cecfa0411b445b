package event

// EventType represents the type of session event
// Zero is reserved for the FSM Tick trigger
type EventType int

const (
	// EventTick drives auto-transitions once per frame
	// Trigger: Machine.Update | Payload: nil
	EventTick EventType = iota

	// === Name Entry ===

	// EventNameConfirm requests leaving name entry with the typed text
	// Trigger: Enter key in EnteringName
	// Consumer: FSM (guarded by NameConfirmed) | Payload: nil
	EventNameConfirm

	// === UI Activation ===

	// EventMenuStart starts a new run
	// Trigger: menu.start region
	// Consumer: FSM | Payload: nil
	EventMenuStart

	// EventMenuInstructions opens the instructions screen
	// Trigger: menu.instructions region
	// Consumer: FSM | Payload: nil
	EventMenuInstructions

	// EventMenuShop opens the upgrade shop
	// Trigger: menu.shop region
	// Consumer: FSM | Payload: nil
	EventMenuShop

	// EventMenuQuit ends the process
	// Trigger: menu.quit region, Ctrl-C, Escape in menu
	// Consumer: FSM | Payload: nil
	EventMenuQuit

	// EventBack returns to the menu from a sub-screen
	// Trigger: back region, Escape in instructions or shop
	// Consumer: FSM | Payload: nil
	EventBack

	// EventGameOverMenu returns to the menu after a death
	// Trigger: gameover.menu region
	// Consumer: FSM | Payload: nil
	EventGameOverMenu

	// === Simulation ===

	// EventShipDestroyed signals the single planet contact that kills the ship
	// Trigger: Session frame step collision pass
	// Consumer: FSM (Playing -> GameOver), SoundManager | Payload: *ShipDestroyedPayload
	EventShipDestroyed

	// EventPodCollected signals one or more pods picked up this frame
	// Trigger: Session frame step pickup pass
	// Consumer: SoundManager | Payload: *PodCollectedPayload
	EventPodCollected

	// EventCoinsAwarded signals coins credited during play
	// Trigger: Session frame step coin accrual
	// Consumer: SoundManager | Payload: *CoinsAwardedPayload
	EventCoinsAwarded

	// === Economy ===

	// EventPurchase reports the outcome of an upgrade attempt
	// Trigger: shop.* region in UpgradeShop
	// Consumer: SoundManager | Payload: *PurchasePayload
	EventPurchase

	// EventHighScore signals a new record was stored
	// Trigger: RecordHighScore action
	// Consumer: none by default | Payload: *HighScorePayload
	EventHighScore
)

// GameEvent is a queued event with its frame stamp
type GameEvent struct {
	Type    EventType
	Payload any
	Frame   int64
}
