package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit       // Ctrl+C, Ctrl+Q
	IntentToggleMute // Ctrl+S
	IntentResize     // Terminal resize event

	// UI
	IntentActivate // Key shortcut or click on a named region

	// Name entry
	IntentTextChar      // Printable character
	IntentTextBackspace // Backspace
	IntentTextConfirm   // Enter

	// Thrust
	IntentThrust // Direction key press or repeat, folded into held axes
)

// Intent is one semantic action decoded from a terminal event
type Intent struct {
	Type   IntentType
	Region string // IntentActivate
	Char   rune   // IntentTextChar
}
