// Package cli wires the gitmsg command: option parsing, localized help and
// errors, and the generate flow.
package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dlnilsson/gitmsg/pkg/i18n"
)

// peekLang extracts the --lang value before cobra parses anything, so even
// parse errors come out localized. Unknown or missing values fall back to
// the default here; real validation happens after parsing.
func peekLang(args []string) i18n.Lang {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--lang" || arg == "-l":
			if i+1 < len(args) {
				if lang, ok := i18n.ParseLang(args[i+1]); ok {
					return lang
				}
			}
		case strings.HasPrefix(arg, "--lang="):
			if lang, ok := i18n.ParseLang(strings.TrimPrefix(arg, "--lang=")); ok {
				return lang
			}
		case strings.HasPrefix(arg, "-l="):
			if lang, ok := i18n.ParseLang(strings.TrimPrefix(arg, "-l=")); ok {
				return lang
			}
		}
	}
	return i18n.DefaultLang
}

func newRootCmd(lang i18n.Lang) *cobra.Command {
	var (
		langFlag  string
		noSpinner bool
	)

	root := &cobra.Command{
		Use:           "gitmsg",
		Short:         "draft a conventional commit message from your working tree",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			selected, ok := i18n.ParseLang(langFlag)
			if !ok {
				fmt.Fprintln(os.Stderr, i18n.Tf(lang, i18n.KeyInvalidLang, langFlag))
				fmt.Fprintln(os.Stderr, i18n.T(lang, i18n.KeyUsageHint))
				return fmt.Errorf("invalid lang %q", langFlag)
			}
			return run(selected, !noSpinner)
		},
	}

	root.Flags().StringVarP(&langFlag, "lang", "l", string(i18n.DefaultLang),
		"output language (en|zh)")
	root.Flags().BoolVar(&noSpinner, "no-spinner", false,
		"disable the spinner while the generator runs")
	root.CompletionOptions.DisableDefaultCmd = true
	root.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), i18n.T(lang, i18n.KeyHelp))
	})
	return root
}

// Execute parses os.Args and runs the flow. Usage errors are reported
// localized with a hint; any returned error maps to exit status 1 in main.
func Execute() error {
	lang := peekLang(os.Args[1:])
	root := newRootCmd(lang)
	err := root.Execute()
	if err != nil && isUsageError(err) {
		fmt.Fprintln(os.Stderr, i18n.Tf(lang, i18n.KeyUsage, err))
		fmt.Fprintln(os.Stderr, i18n.T(lang, i18n.KeyUsageHint))
	}
	return err
}

// isUsageError separates flag-parsing failures (which still need reporting)
// from flow errors that run already reported.
func isUsageError(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "unknown flag") ||
		strings.Contains(msg, "unknown shorthand flag") ||
		strings.Contains(msg, "flag needs an argument") ||
		strings.Contains(msg, "invalid argument") ||
		strings.Contains(msg, "unknown command") ||
		strings.Contains(msg, "accepts 0 arg")
}
