package compare

import (
	"sort"

	internalcompare "github.com/wc-toolkit/cem-changelog/internal/compare"
	"github.com/wc-toolkit/cem-changelog/manifest"
)

// Manifests computes the changelog between two Custom Elements Manifests.
func Manifests(oldManifest, newManifest *manifest.Manifest, opts Options) (Result, error) {
	return ManifestsWith(manifest.Normalizer{}, oldManifest, newManifest, opts)
}

// ManifestsWith is Manifests with a custom component extractor.
func ManifestsWith(extractor manifest.Extractor, oldManifest, newManifest *manifest.Manifest, opts Options) (Result, error) {
	return internalcompare.NewEngine(opts.config(), extractor).Compare(oldManifest, newManifest)
}

// HasBreakingChanges reports whether result contains any breaking change.
func HasBreakingChanges(result Result) bool {
	return len(result.Changelog.BreakingChanges) > 0
}

// Tags returns the tag names of changes in sorted order.
func Tags[T any](changes map[string][]T) []string {
	tags := make([]string, 0, len(changes))
	for tag := range changes {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

func countEntries[T any](changes map[string][]T) int {
	n := 0
	for _, entries := range changes {
		n += len(entries)
	}
	return n
}
