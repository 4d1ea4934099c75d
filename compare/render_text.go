package compare

import (
	"bytes"
	"fmt"
	"io"

	"github.com/pulumi/pulumi/sdk/v3/go/common/util/contract"

	"github.com/wc-toolkit/cem-changelog/internal/util/diagtree"
)

const (
	breakingSection = "Breaking changes"
	featureSection  = "New features"
)

// RenderText writes the changelog as markdown, listing at most maxChanges
// lines of detail (-1 for no limit).
func RenderText(out io.Writer, result Result, maxChanges int) {
	fmt.Fprintf(out, "### Does this release have any API changes?\n\n")

	tree := changelogTree(result)
	displayed := new(bytes.Buffer)
	tree.Display(displayed, maxChanges)

	breaking := countEntries(result.Changelog.BreakingChanges)
	features := countEntries(result.Changelog.FeatureChanges)
	switch {
	case breaking == 0 && features == 0:
		fmt.Fprintln(out, "Looking good! No changes found.")
	case breaking == 0:
		fmt.Fprintf(out, "No breaking changes found. Found %s.\n\n", countNoun(features, "new", "feature"))
	default:
		fmt.Fprintf(out, "Found %s and %s.\n\n",
			countNoun(breaking, "breaking", "change"), countNoun(features, "new", "feature"))
	}

	_, err := out.Write(displayed.Bytes())
	contract.AssertNoErrorf(err, "writing to a bytes.Buffer failing indicates OOM")
}

func changelogTree(result Result) *diagtree.Node {
	root := &diagtree.Node{}
	breaking := root.Label(breakingSection)
	for _, tag := range Tags(result.Changelog.BreakingChanges) {
		for _, msg := range result.Changelog.BreakingChanges[tag] {
			breaking.Value(tag).Entry(diagtree.Danger, msg)
		}
	}
	features := root.Label(featureSection)
	for _, tag := range Tags(result.Changelog.FeatureChanges) {
		for _, msg := range result.Changelog.FeatureChanges[tag] {
			features.Value(tag).Entry(diagtree.Info, msg)
		}
	}
	root.Prune()
	return root
}
