// Package discover builds and runs fd invocations: the shared discovery
// step behind every fsq tool. It owns argv construction, timeout handling,
// and normalization of captured output into caller-facing text.
package discover

import (
	"strconv"
)

// File type filters accepted by fd --type
var ValidTypes = []string{"f", "d", "l", "x", "e", "s", "p"}

// Options is the discovery filter: the parameters shared by every tool to
// select candidate paths before any operation-specific step.
type Options struct {
	Pattern       string
	Path          string
	Type          string // one of ValidTypes
	Extension     string
	Hidden        bool
	NoIgnore      bool
	MaxDepth      int // 0 means unlimited
	Exclude       string
	CaseSensitive bool
	AbsolutePath  bool

	// ChangedWithinHours restricts results to recently modified entries.
	// Zero means no recency filter.
	ChangedWithinHours float64

	// ExtraExcludes carries config-level exclusions (user config plus
	// detected build artifacts); applied after the per-call Exclude.
	ExtraExcludes []string
}

// Args constructs the fd argument list. Flags appear iff the corresponding
// option is set, in a fixed order, so callers get deterministic argv for
// identical options.
func (o Options) Args() []string {
	args := make([]string, 0, 16)

	if o.Hidden {
		args = append(args, "--hidden")
	}
	if o.NoIgnore {
		args = append(args, "--no-ignore")
	}
	if o.CaseSensitive {
		args = append(args, "--case-sensitive")
	}
	if o.AbsolutePath {
		args = append(args, "--absolute-path")
	}
	if o.Type != "" {
		args = append(args, "--type", o.Type)
	}
	if o.Extension != "" {
		args = append(args, "--extension", o.Extension)
	}
	if o.MaxDepth > 0 {
		args = append(args, "--max-depth", strconv.Itoa(o.MaxDepth))
	}
	if o.Exclude != "" {
		args = append(args, "--exclude", o.Exclude)
	}
	for _, pattern := range o.ExtraExcludes {
		args = append(args, "--exclude", pattern)
	}
	if o.ChangedWithinHours > 0 {
		args = append(args, "--changed-within", formatHours(o.ChangedWithinHours))
	}

	if o.Pattern != "" {
		args = append(args, o.Pattern)
	}

	path := o.Path
	if path == "" {
		path = "."
	}
	args = append(args, path)

	return args
}

// formatHours renders a recency window for fd --changed-within. Whole hours
// stay as "24h"; fractional windows drop to minutes for fd to accept them.
func formatHours(hours float64) string {
	whole := int(hours)
	if float64(whole) == hours {
		return strconv.Itoa(whole) + "h"
	}
	minutes := int(hours * 60)
	if minutes < 1 {
		minutes = 1
	}
	return strconv.Itoa(minutes) + "min"
}

// IsValidType reports whether t names one of fd's type filters
func IsValidType(t string) bool {
	for _, v := range ValidTypes {
		if t == v {
			return true
		}
	}
	return false
}
