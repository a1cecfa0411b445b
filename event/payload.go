package event

// ShipDestroyedPayload carries the contact that ended the run
type ShipDestroyedPayload struct {
	PlanetIndex int     `toml:"planet_index"`
	Score       float64 `toml:"score"`
}

// PodCollectedPayload carries the pickup count and the fuel after refueling
type PodCollectedPayload struct {
	Count int     `toml:"count"`
	Fuel  float64 `toml:"fuel"`
}

// CoinsAwardedPayload carries the credited delta and the new balance
type CoinsAwardedPayload struct {
	Credited int `toml:"credited"`
	Balance  int `toml:"balance"`
}

// PurchasePayload carries the stat key and the outcome label
type PurchasePayload struct {
	Stat   string `toml:"stat"`
	Result string `toml:"result"`
	OK     bool   `toml:"ok"`
}

// HighScorePayload carries the new record
type HighScorePayload struct {
	Score float64 `toml:"score"`
}
