package compare

import (
	"encoding/json"
	"fmt"
	"io"
)

// RenderJSON writes the full result as indented JSON. Tag keys are sorted by
// the encoder, and changes keep their comparison order.
func RenderJSON(out io.Writer, result Result) error {
	data, err := json.MarshalIndent(normalizeForJSON(result), "", "  ")
	if err != nil {
		return fmt.Errorf("marshal compare JSON: %w", err)
	}
	if _, err := out.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("write compare JSON: %w", err)
	}
	return nil
}

func normalizeForJSON(result Result) Result {
	return Result{
		Changelog: ChangeList{
			BreakingChanges: ensureMap(result.Changelog.BreakingChanges),
			FeatureChanges:  ensureMap(result.Changelog.FeatureChanges),
		},
		RawData: RawDataChangeList{
			BreakingChanges: ensureMap(result.RawData.BreakingChanges),
			FeatureChanges:  ensureMap(result.RawData.FeatureChanges),
		},
	}
}

func ensureMap[T any](m map[string][]T) map[string][]T {
	if m == nil {
		return map[string][]T{}
	}
	return m
}
