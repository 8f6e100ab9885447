package config

import (
	"fmt"

	"github.com/lgbarn/chessmoves-go/internal/errors"
)

// Profile modes accepted by RunConfig.Profile.
const (
	ProfileNone = ""
	ProfileCPU  = "cpu"
	ProfileMem  = "mem"
)

// RunConfig holds settings for script execution.
type RunConfig struct {
	// Workers is the number of scripts run concurrently (0 = one per CPU)
	Workers int

	// Profile selects a pprof profile to record: "", "cpu" or "mem"
	Profile string

	// ProfilePath is the directory profiles are written to
	ProfilePath string

	// StopOnReject aborts a script at its first rejected move
	StopOnReject bool
}

// NewRunConfig creates a RunConfig with default values.
func NewRunConfig() *RunConfig {
	return &RunConfig{
		Workers:     0,
		Profile:     ProfileNone,
		ProfilePath: ".",
	}
}

// Validate checks that the run configuration is valid.
func (r *RunConfig) Validate() error {
	if r.Workers < 0 {
		return fmt.Errorf("worker count %d is negative: %w", r.Workers, errors.ErrInvalidConfig)
	}
	switch r.Profile {
	case ProfileNone, ProfileCPU, ProfileMem:
	default:
		return fmt.Errorf("unknown profile mode %q: %w", r.Profile, errors.ErrInvalidConfig)
	}
	return nil
}
