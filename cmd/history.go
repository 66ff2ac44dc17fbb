package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/huewheel/huewheel/history"
	"github.com/huewheel/huewheel/icon"
	"github.com/huewheel/huewheel/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().BoolP("json", "j", false, "Print as JSON")
	historyCmd.Flags().Bool("clear", false, "Forget every saved palette")
	historyCmd.SetOut(os.Stdout)
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Recently generated palettes",
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("clear")) {
			handleErr(history.Clear())
			success(cmd, "History cleared")
			return
		}

		saved, err := history.Get()
		handleErr(err)

		if lo.Must(cmd.Flags().GetBool("json")) {
			data, err := json.MarshalIndent(saved, "", "  ")
			handleErr(err)
			cmd.Println(string(data))
			return
		}

		if len(saved) == 0 {
			cmd.Println(style.Faint("No palettes yet"))
			return
		}

		for i, s := range saved {
			cmd.Printf("%s %s %s\n",
				style.Faint(fmt.Sprintf("%d.", i+1)),
				chips(s.Colors),
				style.Faint(fmt.Sprintf("%s %s", s.Label(), s.SavedAt.Local().Format("Jan 2 15:04"))),
			)
		}
	},
}

// chips renders each hex as a colored block.
func chips(hexes []string) string {
	return lo.Reduce(hexes, func(acc, hex string, _ int) string {
		return acc + style.Swatch(hex, 2)
	}, "")
}

// nthSaved resolves a 1-based index from the history list.
func nthSaved(arg string) *history.SavedPalette {
	saved, err := history.Get()
	handleErr(err)

	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 || n > len(saved) {
		handleErr(fmt.Errorf("no palette #%s, there are %d", arg, len(saved)))
	}

	return saved[n-1]
}

func init() {
	historyCmd.AddCommand(historyCopyCmd)
}

var historyCopyCmd = &cobra.Command{
	Use:   "copy <n>",
	Short: "Copy a saved palette",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		copyText(cmd, "palette", nthSaved(args[0]).Joined())
	},
}

func init() {
	historyCmd.AddCommand(historyRemoveCmd)
}

var historyRemoveCmd = &cobra.Command{
	Use:     "remove <n>",
	Short:   "Forget a saved palette",
	Aliases: []string{"rm"},
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		s := nthSaved(args[0])
		handleErr(history.Remove(s))
		cmd.Printf("%s Removed %s\n", icon.Get(icon.Success), s.Joined())
	},
}
