package input

import "github.com/lixenwraith/gravity-ship/engine"

// Apply forwards a session-facing intent and reports whether it was consumed
// Quit, mute and resize belong to the caller
func Apply(s *engine.Session, it Intent) bool {
	switch it.Type {
	case IntentActivate:
		return s.Activate(it.Region)
	case IntentTextChar:
		s.TypeRune(it.Char)
		return true
	case IntentTextBackspace:
		s.Backspace()
		return true
	case IntentTextConfirm:
		return s.ConfirmName()
	case IntentThrust:
		return true
	}
	return false
}
