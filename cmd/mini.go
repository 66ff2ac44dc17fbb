package cmd

import (
	"errors"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/huewheel/huewheel/mini"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(miniCmd)

	miniCmd.Flags().Float64("hue", 0, "Start from this base hue instead of asking")
}

var miniCmd = &cobra.Command{
	Use:   "mini",
	Short: "Build a palette through a few prompts",
	Long:  `Pick a base color, a harmony rule, then copy or export the palette, one prompt at a time.`,
	Run: func(cmd *cobra.Command, args []string) {
		var options mini.Options
		if cmd.Flags().Changed("hue") {
			options.Hue = mo.Some(lo.Must(cmd.Flags().GetFloat64("hue")))
		}

		err := mini.Run(&options)
		if err != nil && !errors.Is(err, terminal.InterruptErr) {
			handleErr(err)
		}
	},
}
