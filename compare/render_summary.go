package compare

import (
	"fmt"
	"io"

	"github.com/pulumi/inflector"
)

// RenderSummary writes change counts per bucket only.
func RenderSummary(out io.Writer, result Result) error {
	breaking := countEntries(result.Changelog.BreakingChanges)
	features := countEntries(result.Changelog.FeatureChanges)
	if breaking == 0 && features == 0 {
		if _, err := fmt.Fprintln(out, "No changes found."); err != nil {
			return fmt.Errorf("write summary output: %w", err)
		}
		return nil
	}

	if _, err := fmt.Fprintln(out, "Summary by category:"); err != nil {
		return fmt.Errorf("write summary output: %w", err)
	}
	lines := []struct {
		category string
		count    int
		tags     int
	}{
		{"breaking", breaking, len(result.Changelog.BreakingChanges)},
		{"feature", features, len(result.Changelog.FeatureChanges)},
	}
	for _, line := range lines {
		if line.count == 0 {
			continue
		}
		if _, err := fmt.Fprintf(out, "- %s: %s in %s\n", line.category,
			countNoun(line.count, "", "change"), countNoun(line.tags, "", "component")); err != nil {
			return fmt.Errorf("write summary output: %w", err)
		}
	}
	return nil
}

// countNoun formats n with noun, pluralized unless n is 1.
func countNoun(n int, adjective, noun string) string {
	if n != 1 {
		noun = inflector.Pluralize(noun)
	}
	if adjective != "" {
		noun = adjective + " " + noun
	}
	return fmt.Sprintf("%d %s", n, noun)
}
