// SPDX-License-Identifier: MPL-2.0

package main

import (
	"fmt"
	"strings"

	"localescope/pkg/framework"

	"github.com/spf13/cobra"
)

var frameworksCmd = &cobra.Command{
	Use:   "frameworks",
	Short: "List the built-in i18n framework registry",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println(TitleStyle.Render("Known frameworks"))
		for _, f := range framework.Default().All() {
			fmt.Printf("  %s %s\n", SuccessStyle.Render(fmt.Sprintf("%-15s", f.ID)), f.DisplayName)
			if len(f.LanguageIDs) > 0 {
				fmt.Printf("    %s %s\n", SubtitleStyle.Render("languages:"), strings.Join(f.LanguageIDs, ", "))
			}
			if f.KeyStyle != "" && f.KeyStyle != framework.KeyStyleAuto {
				fmt.Printf("    %s %s\n", SubtitleStyle.Render("key style:"), string(f.KeyStyle))
			}
		}
		return nil
	},
}
