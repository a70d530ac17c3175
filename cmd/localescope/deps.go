// SPDX-License-Identifier: MPL-2.0

package main

import (
	"errors"
	"fmt"

	"localescope/internal/issue"
	"localescope/pkg/manifest"

	"github.com/spf13/cobra"
)

var depsCmd = &cobra.Command{
	Use:   "deps [path]",
	Short: "List the dependencies declared by the workspace's manifests",
	Long: `Scan the workspace for package manifests and print the union of the
dependency names they declare, across all supported formats (npm,
composer, pubspec, cargo).`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDeps,
}

func runDeps(cmd *cobra.Command, args []string) error {
	root, err := resolveRoot(args)
	if err != nil {
		return err
	}

	resolver := manifest.NewResolver(newLogger())
	deps, err := resolver.Resolve(root)
	if err != nil {
		switch {
		case errors.Is(err, manifest.ErrNoManifest):
			printIssue(issue.NoManifestFoundId)
			return &ExitError{Code: 1}
		case errors.Is(err, manifest.ErrMalformedManifest):
			fmt.Println(ErrorStyle.Render("Error: ") + formatErrorForDisplay(err, verbose))
			printIssue(issue.MalformedManifestId)
			return &ExitError{Code: 1, Err: err}
		default:
			return err
		}
	}

	fmt.Println(TitleStyle.Render("Declared dependencies") + SubtitleStyle.Render(fmt.Sprintf(" (%d)", len(deps))))
	for _, name := range deps.Names() {
		fmt.Printf("  %s\n", name)
	}
	return nil
}

// printIssue renders a guidance page to stdout, silently skipping
// rendering failures.
func printIssue(id issue.Id) {
	page := issue.ById(id)
	if page == nil {
		return
	}
	if rendered, err := page.Render(); err == nil {
		fmt.Print(rendered)
	}
}
