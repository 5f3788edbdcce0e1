package module

import (
	"time"

	"mathgate/internal/platform/config"
)

// Options controls the solver and recognition collaborators
type Options struct {
	SolverBaseURL string
	SolverTimeout time.Duration
	OcrBaseURL    string
	OcrTimeout    time.Duration
	UserAgent     string
}

// FromConfig reads with SOLVE_ prefix
func FromConfig(cfg config.Conf) Options {
	c := cfg.Prefix("SOLVE_")
	return Options{
		SolverBaseURL: c.MayString("SOLVER_BASE_URL", "http://localhost:8800"),
		SolverTimeout: c.MayDuration("SOLVER_TIMEOUT", 15*time.Second),
		OcrBaseURL:    c.MayString("OCR_BASE_URL", ""),
		OcrTimeout:    c.MayDuration("OCR_TIMEOUT", 30*time.Second),
		UserAgent:     c.MayString("USER_AGENT", "mathgate"),
	}
}
