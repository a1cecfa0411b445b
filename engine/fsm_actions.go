package engine

import (
	"github.com/lixenwraith/gravity-ship/engine/fsm"
)

// registerFSMComponents registers every action and guard the session graph may reference
func registerFSMComponents(m *fsm.Machine[*Session]) {
	// --- ACTIONS ---

	// EmitEvent: pushes a pre-compiled event into the session queue
	m.RegisterAction("EmitEvent", func(s *Session, args any) {
		emitArgs, ok := args.(*fsm.EmitEventArgs)
		if !ok {
			return
		}
		s.Push(emitArgs.Type, emitArgs.Payload)
	})

	// ResetWorld: fresh ship and world, coin band back to zero
	m.RegisterAction("ResetWorld", func(s *Session, args any) {
		s.resetWorld()
	})

	// StepWorld: one simulation frame
	m.RegisterAction("StepWorld", func(s *Session, args any) {
		s.stepWorld()
	})

	// TickFeedback: explosion and shake countdown
	m.RegisterAction("TickFeedback", func(s *Session, args any) {
		s.tickFeedback()
	})

	// RecordHighScore: compare and persist
	m.RegisterAction("RecordHighScore", func(s *Session, args any) {
		s.recordHighScore()
	})

	// ReportScore: fire-and-forget submission
	m.RegisterAction("ReportScore", func(s *Session, args any) {
		s.reportScore()
	})

	// --- GUARDS ---

	// NameConfirmed: a non-empty trimmed name was committed
	m.RegisterGuard("NameConfirmed", func(s *Session) bool {
		return s.PlayerName != ""
	})

	// NameEntryDisabled: no reporter, or the name was preset
	m.RegisterGuard("NameEntryDisabled", func(s *Session) bool {
		return s.reporter == nil || s.PlayerName != ""
	})
}
