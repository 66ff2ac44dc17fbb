package cmd

import (
	"encoding/json"
	"os"

	"github.com/huewheel/huewheel/key"
	"github.com/huewheel/huewheel/library"
	"github.com/huewheel/huewheel/log"
	"github.com/huewheel/huewheel/query"
	"github.com/huewheel/huewheel/style"
	"github.com/huewheel/huewheel/util"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type libraryEntry struct {
	Name     string `json:"name"`
	Hex      string `json:"hex"`
	RGB      string `json:"rgb"`
	Category string `json:"category"`
}

func init() {
	rootCmd.AddCommand(libraryCmd)

	libraryCmd.Flags().StringP("category", "C", "", "Only list one category")
	lo.Must0(libraryCmd.RegisterFlagCompletionFunc("category", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return library.Categories(), cobra.ShellCompDirectiveNoFileComp
	}))
	libraryCmd.Flags().StringP("query", "q", "", "Filter by name or hex")
	libraryCmd.Flags().BoolP("fuzzy", "f", false, "Fuzzy match the query against names")
	lo.Must0(viper.BindPFlag(key.SearchFuzzy, libraryCmd.Flags().Lookup("fuzzy")))
	libraryCmd.Flags().BoolP("json", "j", false, "Print as JSON")

	libraryCmd.SetOut(os.Stdout)
}

var libraryCmd = &cobra.Command{
	Use:     "library",
	Short:   "Browse the library of named colors",
	Aliases: []string{"lib"},
	Example: `  huewheel library --category blues
  huewheel library -q navy
  huewheel library -C css -q slate --fuzzy`,
	Run: func(cmd *cobra.Command, args []string) {
		entries := library.All()

		if name := lo.Must(cmd.Flags().GetString("category")); name != "" {
			var ok bool
			entries, ok = library.Category(name)
			if !ok {
				handleErr(errUnknown("category", name, library.Categories()))
			}
		}

		if q := lo.Must(cmd.Flags().GetString("query")); q != "" {
			if err := query.Remember(query.Library, q, 1); err != nil {
				log.Warn(err)
			}

			if viper.GetBool(key.SearchFuzzy) {
				entries = library.Fuzzy(entries, q)
			} else {
				entries = library.Filter(entries, q)
			}
		}

		if lo.Must(cmd.Flags().GetBool("json")) {
			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			handleErr(encoder.Encode(lo.Map(entries, func(e library.Entry, _ int) libraryEntry {
				return libraryEntry{Name: e.Name, Hex: e.Hex, RGB: e.RGB, Category: e.Category}
			})))
			return
		}

		for _, e := range entries {
			cmd.Printf("%s %-22s %s  %s\n", style.Swatch(e.Hex, 2), e.Name, e.Hex, style.Faint(e.Category))
		}

		cmd.Println(style.Faint(util.Quantify(len(entries), "color", "colors")))
	},
}

func init() {
	libraryCmd.AddCommand(libraryCategoriesCmd)
	libraryCategoriesCmd.SetOut(os.Stdout)
}

var libraryCategoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List color categories",
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range library.Categories() {
			entries, _ := library.Category(name)
			cmd.Printf("%s %s\n", name, style.Faint(util.Quantify(len(entries), "color", "colors")))
		}
	},
}
