package compare

import internalcompare "github.com/wc-toolkit/cem-changelog/internal/compare"

// ChangeLevel classifies a configurable category of changes.
type ChangeLevel = internalcompare.ChangeLevel

const (
	LevelBreaking = internalcompare.LevelBreaking
	LevelFeature  = internalcompare.LevelFeature
	LevelPatch    = internalcompare.LevelPatch
	LevelNone     = internalcompare.LevelNone
)

type (
	// ChangeType names the kind of a ChangeRecord.
	ChangeType = internalcompare.ChangeType
	// ChangeRecord is the structured form of one changelog sentence.
	ChangeRecord = internalcompare.ChangeRecord
	// ChangeList maps tag names to changelog sentences.
	ChangeList = internalcompare.ChangeList
	// RawDataChangeList maps tag names to change records.
	RawDataChangeList = internalcompare.RawDataChangeList
	// Result is the structured output of a manifest comparison.
	Result = internalcompare.Result
	// InvalidInputError is returned for manifests that cannot be compared.
	InvalidInputError = internalcompare.InvalidInputError
)

var (
	ErrManifestsRequired  = internalcompare.ErrManifestsRequired
	ErrComponentsRequired = internalcompare.ErrComponentsRequired
)

// Options configures compare behavior.
type Options struct {
	// Report default value changes as features when set to any level.
	DefaultValuesAsNonBreaking ChangeLevel
	// Report type changes as features when set to any level.
	TypeChangesAsNonBreaking ChangeLevel
	// Append deprecation messages to deprecation sentences.
	IncludeDeprecationMessages bool
	// Member field to read type text from. Defaults to "parsedType".
	TypeSrc string
}

func (o Options) config() internalcompare.Config {
	return internalcompare.Config{
		DefaultValuesAsNonBreaking: o.DefaultValuesAsNonBreaking,
		TypeChangesAsNonBreaking:   o.TypeChangesAsNonBreaking,
		IncludeDeprecationMessages: o.IncludeDeprecationMessages,
		TypeSrc:                    o.TypeSrc,
	}
}
