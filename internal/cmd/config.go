package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/wc-toolkit/cem-changelog/compare"
)

const (
	// envPrefix prefixes every environment variable read by the CLI.
	envPrefix = "CEM_CHANGELOG"
	// configName is looked up in the working directory when --config is not set.
	configName = ".cem-changelog"
)

const (
	formatText    = "text"
	formatJSON    = "json"
	formatSummary = "summary"
)

// compareOptions is the resolved configuration of one compare run.
type compareOptions struct {
	Old          string
	New          string
	Repository   string
	ManifestPath string

	Format         string
	MaxChanges     int
	FailOnBreaking bool

	Compare compare.Options
}

// newViper layers a config file and CEM_CHANGELOG_* environment variables
// under the flags of cmd. Flags that were set explicitly win.
func newViper(cmd *cobra.Command, configFile string) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return nil, fmt.Errorf("bind flags: %w", err)
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(configName)
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}
	return v, nil
}

func loadCompareOptions(v *viper.Viper) (compareOptions, error) {
	opts := compareOptions{
		Old:            v.GetString("old"),
		New:            v.GetString("new"),
		Repository:     v.GetString("repository"),
		ManifestPath:   v.GetString("manifest-path"),
		Format:         strings.ToLower(v.GetString("format")),
		MaxChanges:     v.GetInt("max-changes"),
		FailOnBreaking: v.GetBool("fail-on-breaking"),
		Compare: compare.Options{
			IncludeDeprecationMessages: v.GetBool("include-deprecation-messages"),
			TypeSrc:                    v.GetString("type-src"),
		},
	}

	if opts.Old == "" || opts.New == "" {
		return compareOptions{}, errors.New("both --old and --new must be set")
	}

	switch opts.Format {
	case formatText, formatJSON, formatSummary:
	default:
		return compareOptions{}, fmt.Errorf("unknown format %q: expected %s, %s or %s",
			opts.Format, formatText, formatJSON, formatSummary)
	}

	var err error
	opts.Compare.TypeChangesAsNonBreaking, err = parseLevel("type-changes-as-non-breaking",
		v.GetString("type-changes-as-non-breaking"))
	if err != nil {
		return compareOptions{}, err
	}
	opts.Compare.DefaultValuesAsNonBreaking, err = parseLevel("default-values-as-non-breaking",
		v.GetString("default-values-as-non-breaking"))
	if err != nil {
		return compareOptions{}, err
	}

	return opts, nil
}

func parseLevel(key, value string) (compare.ChangeLevel, error) {
	level := compare.ChangeLevel(strings.ToLower(strings.TrimSpace(value)))
	switch level {
	case "", compare.LevelBreaking, compare.LevelFeature, compare.LevelPatch, compare.LevelNone:
		return level, nil
	}
	return "", fmt.Errorf("invalid %s level %q: expected one of %s, %s, %s or %s", key, value,
		compare.LevelBreaking, compare.LevelFeature, compare.LevelPatch, compare.LevelNone)
}
