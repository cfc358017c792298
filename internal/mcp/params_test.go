package mcp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveType(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"f", "f"},
		{"d", "d"},
		{"p", "p"},
		{"file", "f"},
		{"FILE", "f"},
		{"directory", "d"},
		{"folder", "d"},
		{"symlink", "l"},
		{"executable", "x"},
		{"empty", "e"},
		{"socket", "s"},
		{"fifo", "p"},
		{" dir ", "d"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := resolveType(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveTypeSuggestsClosest(t *testing.T) {
	_, err := resolveType("fil")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "did you mean")
	assert.Contains(t, err.Error(), "file")

	_, err = resolveType("direcotry")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "directory")
}

func TestResolveTypeNoSuggestion(t *testing.T) {
	_, err := resolveType("zzzzzzzz")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be one of")
}

func TestDiscoveryValidateNormalizesType(t *testing.T) {
	d := DiscoveryParams{Type: "file"}
	require.NoError(t, d.Validate())
	assert.Equal(t, "f", d.Type)
}

func TestDiscoveryValidateRejectsNegativeDepth(t *testing.T) {
	d := DiscoveryParams{MaxDepth: -1}
	assert.Error(t, d.Validate())
}

func TestDiscoveryOptionsStripsExtensionDot(t *testing.T) {
	d := DiscoveryParams{Extension: ".go"}
	assert.Equal(t, "go", d.Options().Extension)
}

func TestContentParamsValidate(t *testing.T) {
	p := ContentParams{}
	assert.Error(t, p.Validate())

	p = ContentParams{Query: "  "}
	assert.Error(t, p.Validate())

	p = ContentParams{Query: "x", Context: -1}
	assert.Error(t, p.Validate())

	p = ContentParams{Query: "x"}
	assert.NoError(t, p.Validate())
}

func TestExecParamsValidate(t *testing.T) {
	p := ExecParams{}
	assert.Error(t, p.Validate())

	p = ExecParams{Command: "wc -l {}"}
	assert.NoError(t, p.Validate())
}

func TestRecentParamsValidate(t *testing.T) {
	p := RecentParams{Hours: -2}
	assert.Error(t, p.Validate())

	p = RecentParams{Hours: 0.5}
	assert.NoError(t, p.Validate())
}

func TestSubstituteCommand(t *testing.T) {
	assert.Equal(t, "wc -l 'a.go'", substituteCommand("wc -l {}", "a.go"))
	assert.Equal(t, "head 'a.go' && tail 'a.go'", substituteCommand("head {} && tail {}", "a.go"))
	assert.Equal(t, "wc -l 'a.go'", substituteCommand("wc -l", "a.go"))
}

func TestShellQuote(t *testing.T) {
	assert.Equal(t, "'plain.txt'", shellQuote("plain.txt"))
	assert.Equal(t, `'it'\''s.txt'`, shellQuote("it's.txt"))
}

func TestClosestToolName(t *testing.T) {
	assert.Equal(t, ToolSearch, closestToolName("serach"))
	assert.Equal(t, ToolCount, closestToolName("cout"))
	assert.Equal(t, "", closestToolName("completely-unrelated"))
}
