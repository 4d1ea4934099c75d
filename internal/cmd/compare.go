package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/pulumi/pulumi/sdk/v3/go/common/util/logging"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/wc-toolkit/cem-changelog/compare"
	"github.com/wc-toolkit/cem-changelog/internal/pkg"
	"github.com/wc-toolkit/cem-changelog/manifest"
)

// errBreakingChanges fails the command under --fail-on-breaking.
var errBreakingChanges = errors.New("breaking changes found")

func compareCmd() *cobra.Command {
	var configFile string

	command := &cobra.Command{
		Use:   "compare",
		Short: "Compare two versions of a Custom Elements Manifest",
		Long: "Compare two versions of a Custom Elements Manifest and report breaking changes and new features.\n\n" +
			"Without --repository, --old and --new are paths to manifest files. With a github://<host>/<owner>/<repo>\n" +
			"or gitlab://<host>/<owner>/<repo> repository they are git refs, and with a file:<dir> repository\n" +
			"they are checkout directories below <dir>.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := newViper(cmd, configFile)
			if err != nil {
				return err
			}
			opts, err := loadCompareOptions(v)
			if err != nil {
				return err
			}
			return runCompare(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), opts)
		},
	}

	flags := command.Flags()
	flags.StringVar(&configFile, "config", "",
		"config file to read (defaults to .cem-changelog.{yaml,json} in the working directory)")

	flags.StringP("old", "o", "", "the old manifest: a file path, or a ref of --repository")
	flags.StringP("new", "n", "", "the new manifest: a file path, or a ref of --repository")
	flags.StringP("repository", "r", "",
		"the repository to read manifests from (github://, gitlab:// or file: url)")
	flags.String("manifest-path", pkg.DefaultManifestPath, "the manifest path inside --repository")

	flags.StringP("format", "f", formatText, "the output format: text, json or summary")
	flags.IntP("max-changes", "m", -1, "the maximum number of changelog lines to print in text output (-1 for all)")
	flags.Bool("fail-on-breaking", false, "exit with an error when breaking changes are found")

	flags.String("type-changes-as-non-breaking", "",
		"report type changes as features when set to a level (breaking, feature, patch or none)")
	flags.String("default-values-as-non-breaking", "",
		"report default value changes as features when set to a level (breaking, feature, patch or none)")
	flags.Bool("include-deprecation-messages", false, "append deprecation messages to deprecation changes")
	flags.String("type-src", "", `the member field to read types from (defaults to "parsedType", falling back to "type")`)

	return command
}

func runCompare(ctx context.Context, stdout, stderr io.Writer, opts compareOptions) error {
	var oldManifest, newManifest *manifest.Manifest
	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		m, err := pkg.LoadManifest(groupCtx, opts.Repository, opts.Old, opts.ManifestPath)
		if err != nil {
			return fmt.Errorf("load old manifest: %w", err)
		}
		oldManifest = m
		return nil
	})
	group.Go(func() error {
		m, err := pkg.LoadManifest(groupCtx, opts.Repository, opts.New, opts.ManifestPath)
		if err != nil {
			return fmt.Errorf("load new manifest: %w", err)
		}
		newManifest = m
		return nil
	})
	if err := group.Wait(); err != nil {
		return err
	}

	result, err := compare.Manifests(oldManifest, newManifest, opts.Compare)
	if err != nil {
		return err
	}
	logging.V(5).Infof("compared %s against %s", opts.Old, opts.New)

	switch opts.Format {
	case formatJSON:
		err = compare.RenderJSON(stdout, result)
	case formatSummary:
		err = compare.RenderSummary(stdout, result)
	default:
		compare.RenderText(stdout, result, opts.MaxChanges)
	}
	if err != nil {
		return err
	}

	reportStatus(stderr, result)
	if opts.FailOnBreaking && compare.HasBreakingChanges(result) {
		return errBreakingChanges
	}
	return nil
}

// reportStatus writes a one line verdict to stderr so it never mixes with
// machine readable output.
func reportStatus(stderr io.Writer, result compare.Result) {
	breaking := len(result.Changelog.BreakingChanges)
	features := len(result.Changelog.FeatureChanges)
	switch {
	case breaking > 0:
		_, _ = color.New(color.FgRed).Fprintf(stderr, "✗ breaking changes in %d component(s)\n", breaking)
	case features > 0:
		_, _ = color.New(color.FgGreen).Fprintf(stderr, "✔ no breaking changes, new features in %d component(s)\n", features)
	default:
		_, _ = color.New(color.FgGreen).Fprintln(stderr, "✔ no API changes")
	}
}
