package score

import (
	"fmt"
	"log"
	"time"

	"github.com/lixenwraith/gravity-ship/parameter"
)

// ReporterService wraps Reporter as a service.Service
// An empty endpoint leaves the service idle with a nil reporter
type ReporterService struct {
	reporter *Reporter
	drain    time.Duration
}

// NewService creates an unconfigured reporter service
func NewService() *ReporterService {
	return &ReporterService{drain: parameter.ScoreReportDrainTimeout}
}

// Name implements Service
func (s *ReporterService) Name() string {
	return "score"
}

// Dependencies implements Service
func (s *ReporterService) Dependencies() []string {
	return nil
}

// Init implements Service
// args[0]: string - endpoint URL, empty disables reporting
// args[1]: time.Duration - per-submission timeout (default ScoreReportTimeout)
func (s *ReporterService) Init(args ...any) error {
	endpoint := ""
	if len(args) > 0 {
		endpoint, _ = args[0].(string)
	}
	timeout := parameter.ScoreReportTimeout
	if len(args) > 1 {
		if d, ok := args[1].(time.Duration); ok && d > 0 {
			timeout = d
		}
	}

	if endpoint == "" {
		log.Printf("score: no endpoint configured, reporting disabled")
		return nil
	}

	r, err := NewReporter(endpoint, timeout)
	if err != nil {
		return fmt.Errorf("score reporter: %w", err)
	}
	s.reporter = r
	return nil
}

// Start implements Service
func (s *ReporterService) Start() error {
	return nil
}

// Stop implements Service
// Waits up to the drain timeout for in-flight submissions
func (s *ReporterService) Stop() error {
	if s.reporter == nil {
		return nil
	}
	if !s.reporter.Close(s.drain) {
		log.Printf("score: in-flight submissions cancelled at shutdown")
	}
	return nil
}

// Reporter returns the live reporter, nil when reporting is disabled
func (s *ReporterService) Reporter() *Reporter {
	return s.reporter
}
