package compare

import "github.com/wc-toolkit/cem-changelog/manifest"

// ChangeLevel is a configured classification for a category of changes.
type ChangeLevel string

const (
	LevelBreaking ChangeLevel = "breaking"
	LevelFeature  ChangeLevel = "feature"
	LevelPatch    ChangeLevel = "patch"
	LevelNone     ChangeLevel = "none"
)

// Config is fixed for the lifetime of an Engine.
type Config struct {
	// Any non-empty level moves default value changes out of the breaking bucket.
	DefaultValuesAsNonBreaking ChangeLevel
	// Any non-empty level moves type changes out of the breaking bucket.
	TypeChangesAsNonBreaking ChangeLevel
	// Append the new deprecation message to deprecation sentences.
	IncludeDeprecationMessages bool
	// The member field type text is read from, falling back to "type".
	// Defaults to "parsedType".
	TypeSrc string
}

func (c Config) withDefaults() Config {
	if c.TypeSrc == "" {
		c.TypeSrc = manifest.TypeSrcParsed
	}
	return c
}

type bucket int

const (
	breaking bucket = iota
	feature
)

func (b bucket) String() string {
	if b == feature {
		return "feature"
	}
	return "breaking"
}

// policy decides the bucket of the categories whose classification is
// configurable. Every other category has a fixed bucket.
type policy struct {
	config Config
}

func (p policy) defaultValueChange() bucket {
	return levelBucket(p.config.DefaultValuesAsNonBreaking)
}

// typeChange applies to every surface alike, methods included.
func (p policy) typeChange() bucket {
	return levelBucket(p.config.TypeChangesAsNonBreaking)
}

func (p policy) deprecationSuffix(deprecated manifest.Value) string {
	if !p.config.IncludeDeprecationMessages {
		return ""
	}
	if msg, ok := deprecated.Message(); ok {
		return " " + msg
	}
	return ""
}

func levelBucket(level ChangeLevel) bucket {
	if level != "" {
		return feature
	}
	return breaking
}
