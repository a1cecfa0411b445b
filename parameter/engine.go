package parameter

import "time"

// Game Loop Timing
const (
	// FrameUpdateInterval is the frame cadence (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// MaxFrameDelta caps elapsed time fed into a single simulation step after a stall
	MaxFrameDelta = 50 * time.Millisecond

	// EventChannelSize is the buffer between the terminal poller goroutine and the frame loop
	EventChannelSize = 256
)

// Input
const (
	// KeyHoldWindow is how long a direction key counts as held after its last press or repeat
	// Terminals report no key release, so held state is inferred from auto-repeat
	KeyHoldWindow = 120 * time.Millisecond

	// NameMaxLength is the maximum number of characters accepted in name entry
	NameMaxLength = 12
)

// Score reporting
const (
	// ScoreEndpoint is the default remote leaderboard endpoint
	ScoreEndpoint = "https://gravity-game-backend.onrender.com/add_score"

	// ScoreReportTimeout bounds a single score submission
	ScoreReportTimeout = 5 * time.Second

	// ScoreReportDrainTimeout bounds how long shutdown waits for in-flight submissions
	ScoreReportDrainTimeout = 2 * time.Second
)

// Persistence
const (
	// HighScoreFile is the default high score path, relative to the working directory
	HighScoreFile = "highscore.txt"
)
