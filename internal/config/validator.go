package config

import (
	"errors"
	"fmt"

	"github.com/bmatcuk/doublestar/v4"

	fsqerrors "github.com/standardbeagle/fsq/internal/errors"
)

// Validate checks the loaded configuration for values that would break
// every tool call at runtime. Binary absence is not an error here; tools
// report unavailability per call instead.
func (c *Config) Validate() error {
	if err := validateProject(&c.Project); err != nil {
		return fsqerrors.NewConfigError("project", "", err)
	}
	if err := validateTimeouts(&c.Timeouts); err != nil {
		return fsqerrors.NewConfigError("timeouts", "", err)
	}
	if err := validateLimits(&c.Limits); err != nil {
		return fsqerrors.NewConfigError("limits", "", err)
	}
	if err := validateExcludes(c.Exclude); err != nil {
		return fsqerrors.NewConfigError("exclude", "", err)
	}
	return nil
}

func validateProject(project *Project) error {
	if project.Root == "" {
		return errors.New("project root cannot be empty")
	}
	return nil
}

func validateTimeouts(t *Timeouts) error {
	if t.SearchSec <= 0 {
		return fmt.Errorf("SearchSec must be positive, got %d", t.SearchSec)
	}
	if t.ExecSec <= 0 {
		return fmt.Errorf("ExecSec must be positive, got %d", t.ExecSec)
	}
	if t.ExecSec > t.SearchSec {
		return fmt.Errorf("ExecSec (%d) should not exceed SearchSec (%d)", t.ExecSec, t.SearchSec)
	}
	return nil
}

func validateLimits(l *Limits) error {
	if l.MaxResults <= 0 {
		return fmt.Errorf("MaxResults must be positive, got %d", l.MaxResults)
	}
	if l.MaxContentFiles <= 0 {
		return fmt.Errorf("MaxContentFiles must be positive, got %d", l.MaxContentFiles)
	}
	if l.MaxExecFiles <= 0 {
		return fmt.Errorf("MaxExecFiles must be positive, got %d", l.MaxExecFiles)
	}
	return nil
}

func validateExcludes(patterns []string) error {
	for _, pattern := range patterns {
		if !doublestar.ValidatePattern(pattern) {
			return fmt.Errorf("invalid exclude glob %q", pattern)
		}
	}
	return nil
}
