package bench

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeSplitSumsExactly(t *testing.T) {
	categories := Categories()
	for _, total := range []int{100, 101, 137, 250, 999, 10000} {
		counts, err := ComputeSplit(categories, total)
		require.NoError(t, err, "total %d", total)

		sum := 0
		for i, n := range counts {
			assert.GreaterOrEqual(t, n, 0, "category %s for total %d", categories[i].Name, total)
			sum += n
		}
		assert.Equal(t, total, sum, "total %d", total)
	}
}

func TestComputeSplitRejectsSmallTotals(t *testing.T) {
	_, err := ComputeSplit(Categories(), 99)
	require.Error(t, err)
	assert.Contains(t, err.Error(), ">= 100")
}

func TestComputeSplitFractions(t *testing.T) {
	counts, err := ComputeSplit(Categories(), 1000)
	require.NoError(t, err)

	byName := make(map[string]int)
	for i, cat := range Categories() {
		byName[cat.Name] = counts[i]
	}
	assert.Equal(t, 150, byName["python source"])
	assert.Equal(t, 150, byName["tests"])
	assert.Equal(t, 100, byName["js components"])
	assert.Equal(t, 80, byName["shell scripts"])
	assert.Equal(t, 10, byName["env files"])

	// 1000 allocates 1000 to fractional categories, leaving nothing over.
	assert.Equal(t, 0, byName["legacy modules"])
	assert.Equal(t, 0, byName["integration tests"])
}

func TestGeneratorRun(t *testing.T) {
	root := filepath.Join(t.TempDir(), "test_data")
	var out bytes.Buffer
	g := &Generator{Root: root, Out: &out, WriteManifest: true}

	summary, err := g.Run(context.Background(), 120)
	require.NoError(t, err)
	assert.Equal(t, 120, summary.Total)

	actual, perExt, err := g.Verify(120)
	require.NoError(t, err)
	assert.Equal(t, 120, actual)
	assert.Greater(t, perExt["**/*.py"], 0)
	assert.Greater(t, perExt["**/*.js"], 0)
	assert.Greater(t, perExt["**/*.md"], 0)

	// Scripts must be executable.
	info, err := os.Stat(filepath.Join(root, "scripts", "script_1.sh"))
	require.NoError(t, err)
	assert.NotZero(t, info.Mode()&0111)

	assert.Contains(t, out.String(), "Creating 120 files")
}

func TestGeneratorRunReplacesExistingTree(t *testing.T) {
	root := filepath.Join(t.TempDir(), "test_data")
	require.NoError(t, os.MkdirAll(root, 0755))
	leftover := filepath.Join(root, "stale.txt")
	require.NoError(t, os.WriteFile(leftover, []byte("old"), 0644))

	g := &Generator{Root: root}
	_, err := g.Run(context.Background(), 100)
	require.NoError(t, err)

	_, err = os.Stat(leftover)
	assert.True(t, os.IsNotExist(err))

	_, _, err = g.Verify(100)
	assert.NoError(t, err)
}

func TestGeneratorVerifyDetectsMismatch(t *testing.T) {
	root := filepath.Join(t.TempDir(), "test_data")
	g := &Generator{Root: root}
	_, err := g.Run(context.Background(), 100)
	require.NoError(t, err)

	require.NoError(t, os.Remove(filepath.Join(root, "src", "module_1.py")))

	actual, _, err := g.Verify(100)
	require.Error(t, err)
	assert.Equal(t, 99, actual)
}

func TestManifestRoundTrip(t *testing.T) {
	root := filepath.Join(t.TempDir(), "test_data")
	g := &Generator{Root: root, WriteManifest: true}
	_, err := g.Run(context.Background(), 100)
	require.NoError(t, err)

	entries, err := LoadManifest(filepath.Join(root, ManifestName))
	require.NoError(t, err)
	assert.Len(t, entries, 100)

	stale, err := CheckManifest(root, entries)
	require.NoError(t, err)
	assert.Empty(t, stale)

	// Corrupt a file and a deleted file should both show up.
	require.NoError(t, os.WriteFile(filepath.Join(root, "src", "module_1.py"), []byte("changed"), 0644))
	require.NoError(t, os.Remove(filepath.Join(root, "tests", "test_module_1.py")))

	stale, err = CheckManifest(root, entries)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"src/module_1.py", "tests/test_module_1.py"}, stale)
}
