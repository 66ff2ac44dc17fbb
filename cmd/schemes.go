package cmd

import (
	"encoding/json"
	"os"
	"strings"
	"time"

	"github.com/huewheel/huewheel/export"
	"github.com/huewheel/huewheel/log"
	"github.com/huewheel/huewheel/query"
	"github.com/huewheel/huewheel/scheme"
	"github.com/huewheel/huewheel/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(schemesCmd)
}

var schemesCmd = &cobra.Command{
	Use:   "schemes",
	Short: "Curated color schemes from popular design systems",
}

func completionSchemes(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	return scheme.Names(scheme.All()), cobra.ShellCompDirectiveNoFileComp
}

// findScheme resolves the scheme named by args, which may be split on spaces.
func findScheme(args []string) scheme.Scheme {
	name := strings.Join(args, " ")
	s, ok := scheme.Find(name)
	if !ok {
		handleErr(errUnknown("scheme", name, scheme.Names(scheme.All())))
	}

	return s
}

func init() {
	schemesCmd.AddCommand(schemesListCmd)

	schemesListCmd.Flags().StringP("category", "C", "", "Only list one category")
	lo.Must0(schemesListCmd.RegisterFlagCompletionFunc("category", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return scheme.Categories(), cobra.ShellCompDirectiveNoFileComp
	}))
	schemesListCmd.Flags().StringP("query", "q", "", "Filter by name, description or category")
	schemesListCmd.Flags().BoolP("json", "j", false, "Print as JSON")
	schemesListCmd.SetOut(os.Stdout)
}

var schemesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List color schemes",
	Run: func(cmd *cobra.Command, args []string) {
		list := scheme.All()

		if name := lo.Must(cmd.Flags().GetString("category")); name != "" {
			var ok bool
			list, ok = scheme.Category(name)
			if !ok {
				handleErr(errUnknown("category", name, scheme.Categories()))
			}
		}

		if q := lo.Must(cmd.Flags().GetString("query")); q != "" {
			if err := query.Remember(query.Schemes, q, 1); err != nil {
				log.Warn(err)
			}

			list = scheme.Filter(list, q)
		}

		if lo.Must(cmd.Flags().GetBool("json")) {
			now := time.Now()
			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			handleErr(encoder.Encode(lo.Map(list, func(s scheme.Scheme, _ int) export.Scheme {
				return export.NewScheme(s, now)
			})))
			return
		}

		category := ""
		for _, s := range list {
			if s.Category != category {
				if category != "" {
					cmd.Println()
				}
				category = s.Category
				cmd.Println(style.Title(category))
			}

			swatches := lo.Map(s.Colors, func(hex string, _ int) string {
				return style.Swatch(hex, 3)
			})
			cmd.Printf("%s %s\n", strings.Join(swatches, ""), style.Bold(s.Name))
			cmd.Printf("  %s\n", style.Faint(s.Description))
		}
	},
}

func init() {
	schemesCmd.AddCommand(schemesCopyCmd)
	schemesCmd.AddCommand(schemesExportCmd)
	schemesCopyCmd.SetOut(os.Stdout)
	schemesExportCmd.SetOut(os.Stdout)
}

var schemesCopyCmd = &cobra.Command{
	Use:               "copy <name>",
	Short:             "Copy every hex code of a scheme",
	Args:              cobra.MinimumNArgs(1),
	ValidArgsFunction: completionSchemes,
	Run: func(cmd *cobra.Command, args []string) {
		s := findScheme(args)
		copyText(cmd, "entire "+s.Name+" palette", s.Joined())
	},
}

var schemesExportCmd = &cobra.Command{
	Use:               "export <name>",
	Short:             "Export a scheme as JSON to the export directory",
	Args:              cobra.MinimumNArgs(1),
	ValidArgsFunction: completionSchemes,
	Run: func(cmd *cobra.Command, args []string) {
		s := findScheme(args)
		exportDocument(cmd, export.NewScheme(s, time.Now()), "Downloaded "+s.Name+" scheme")
	},
}
