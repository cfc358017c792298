// Package bench generates the synthetic benchmark corpus: a fixed
// distribution of templated source, config, doc and data files used to
// exercise the search tools against a tree of known shape.
package bench

import (
	"fmt"
	"os"
)

// Category describes one synthetic file family: where its files go, what
// share of the total it receives, and how each file is rendered.
type Category struct {
	Name     string
	Dir      string
	Fraction float64     // share of the requested total; 0 for remainder categories
	Mode     os.FileMode // 0 means regular 0644
	FileName func(i int) string
	Content  func(i int) string
}

// MinFiles is the smallest corpus the fixed percentage split supports
const MinFiles = 100

// Categories returns the corpus categories in generation order. The
// fractional categories cover 100% minus a remainder that splits 60/40
// between legacy modules and integration tests.
func Categories() []Category {
	return []Category{
		{
			Name: "python source", Dir: "src", Fraction: 0.15,
			FileName: func(i int) string { return fmt.Sprintf("module_%d.py", i) },
			Content:  pythonModule,
		},
		{
			Name: "python helpers", Dir: "src", Fraction: 0.05,
			FileName: func(i int) string { return fmt.Sprintf("helper_%d.py", i) },
			Content:  pythonHelper,
		},
		{
			Name: "tests", Dir: "tests", Fraction: 0.15,
			FileName: func(i int) string { return fmt.Sprintf("test_module_%d.py", i) },
			Content:  pythonTest,
		},
		{
			Name: "js components", Dir: "src", Fraction: 0.10,
			FileName: func(i int) string { return fmt.Sprintf("component_%d.js", i) },
			Content:  jsComponent,
		},
		{
			Name: "js utils", Dir: "src", Fraction: 0.05,
			FileName: func(i int) string { return fmt.Sprintf("util_%d.js", i) },
			Content:  jsUtil,
		},
		{
			Name: "json config", Dir: "config", Fraction: 0.05,
			FileName: func(i int) string { return fmt.Sprintf("config_%d.json", i) },
			Content:  jsonConfig,
		},
		{
			Name: "yaml config", Dir: "config", Fraction: 0.05,
			FileName: func(i int) string { return fmt.Sprintf("settings_%d.yaml", i) },
			Content:  yamlConfig,
		},
		{
			Name: "docs", Dir: "docs", Fraction: 0.10,
			FileName: func(i int) string { return fmt.Sprintf("doc_%d.md", i) },
			Content:  markdownDoc,
		},
		{
			Name: "shell scripts", Dir: "scripts", Fraction: 0.08, Mode: 0755,
			FileName: func(i int) string { return fmt.Sprintf("script_%d.sh", i) },
			Content:  shellScript,
		},
		{
			Name: "python lib", Dir: "lib", Fraction: 0.04,
			FileName: func(i int) string { return fmt.Sprintf("library_%d.py", i) },
			Content:  pythonLibrary,
		},
		{
			Name: "js lib", Dir: "lib", Fraction: 0.03,
			FileName: func(i int) string { return fmt.Sprintf("common_%d.js", i) },
			Content:  jsLibrary,
		},
		{
			Name: "examples", Dir: "examples", Fraction: 0.10,
			FileName: func(i int) string { return fmt.Sprintf("example_%d.py", i) },
			Content:  pythonExample,
		},
		{
			Name: "text data", Dir: "src", Fraction: 0.03,
			FileName: func(i int) string { return fmt.Sprintf("data_%d.txt", i) },
			Content:  textData,
		},
		{
			Name: "env files", Dir: "config", Fraction: 0.01,
			FileName: func(i int) string { return fmt.Sprintf("env_%d.env", i) },
			Content:  envFile,
		},
		{
			Name: "readme files", Dir: "docs", Fraction: 0.01,
			FileName: func(i int) string { return fmt.Sprintf("README_%d.md", i) },
			Content:  readmeFile,
		},
		// Remainder categories: Fraction 0, filled by ComputeSplit.
		{
			Name: "legacy modules", Dir: "src",
			FileName: func(i int) string { return fmt.Sprintf("legacy_%d.py", i) },
			Content:  pythonLegacy,
		},
		{
			Name: "integration tests", Dir: "tests",
			FileName: func(i int) string { return fmt.Sprintf("integration_test_%d.py", i) },
			Content:  pythonIntegrationTest,
		},
	}
}

// ComputeSplit allocates total across the categories. Fractional categories
// floor their share; whatever remains splits 60/40 between the two
// remainder categories, so the counts always sum to total exactly.
func ComputeSplit(categories []Category, total int) ([]int, error) {
	if total < MinFiles {
		return nil, fmt.Errorf("file count must be >= %d, got %d", MinFiles, total)
	}

	counts := make([]int, len(categories))
	allocated := 0
	remainderIdx := make([]int, 0, 2)

	for i, cat := range categories {
		if cat.Fraction == 0 {
			remainderIdx = append(remainderIdx, i)
			continue
		}
		counts[i] = int(float64(total) * cat.Fraction)
		allocated += counts[i]
	}

	remaining := total - allocated
	if remaining < 0 {
		return nil, fmt.Errorf("category fractions exceed 100%% for total %d", total)
	}
	if len(remainderIdx) != 2 {
		return nil, fmt.Errorf("expected 2 remainder categories, found %d", len(remainderIdx))
	}

	legacy := int(float64(remaining) * 0.6)
	counts[remainderIdx[0]] = legacy
	counts[remainderIdx[1]] = remaining - legacy

	return counts, nil
}

// SubDirs are the directories the corpus is laid out under
var SubDirs = []string{"src", "tests", "docs", "config", "scripts", "lib", "examples"}
