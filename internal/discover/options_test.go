package discover

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArgsDefaultsToBarePath(t *testing.T) {
	args := Options{}.Args()
	assert.Equal(t, []string{"."}, args)
}

func TestArgsAllFilters(t *testing.T) {
	opts := Options{
		Pattern:       `\.go$`,
		Path:          "/src",
		Type:          "f",
		Extension:     "go",
		Hidden:        true,
		NoIgnore:      true,
		MaxDepth:      3,
		Exclude:       "vendor",
		CaseSensitive: true,
		AbsolutePath:  true,
	}

	assert.Equal(t, []string{
		"--hidden",
		"--no-ignore",
		"--case-sensitive",
		"--absolute-path",
		"--type", "f",
		"--extension", "go",
		"--max-depth", "3",
		"--exclude", "vendor",
		`\.go$`,
		"/src",
	}, opts.Args())
}

func TestArgsOmitsAbsentOptions(t *testing.T) {
	args := Options{Pattern: "main", Path: "."}.Args()

	assert.Equal(t, []string{"main", "."}, args)
	for _, flag := range []string{"--hidden", "--no-ignore", "--case-sensitive",
		"--absolute-path", "--type", "--extension", "--max-depth", "--exclude", "--changed-within"} {
		assert.NotContains(t, args, flag)
	}
}

func TestArgsExtraExcludesFollowCallExclude(t *testing.T) {
	opts := Options{
		Exclude:       "*.log",
		ExtraExcludes: []string{"node_modules", "target"},
	}
	assert.Equal(t, []string{
		"--exclude", "*.log",
		"--exclude", "node_modules",
		"--exclude", "target",
		".",
	}, opts.Args())
}

func TestArgsRecencyWindow(t *testing.T) {
	args := Options{ChangedWithinHours: 24}.Args()
	assert.Equal(t, []string{"--changed-within", "24h", "."}, args)

	args = Options{ChangedWithinHours: 0.5}.Args()
	assert.Equal(t, []string{"--changed-within", "30min", "."}, args)
}

func TestFormatHours(t *testing.T) {
	assert.Equal(t, "1h", formatHours(1))
	assert.Equal(t, "168h", formatHours(168))
	assert.Equal(t, "90min", formatHours(1.5))
	assert.Equal(t, "1min", formatHours(0.001))
}

func TestIsValidType(t *testing.T) {
	for _, v := range []string{"f", "d", "l", "x", "e", "s", "p"} {
		assert.True(t, IsValidType(v), v)
	}
	assert.False(t, IsValidType("file"))
	assert.False(t, IsValidType(""))
}
