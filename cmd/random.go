package cmd

import (
	"os"

	"github.com/huewheel/huewheel/harmony"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(randomCmd)

	randomCmd.Flags().Uint64P("seed", "s", 0, "Seed for a reproducible palette")
	paletteFlags(randomCmd)

	randomCmd.SetOut(os.Stdout)
}

var randomCmd = &cobra.Command{
	Use:   "random",
	Short: "Generate a random five color palette",
	Long: `Generate a random five color palette.
Hues are spaced 72° apart from a random base, with random saturation and lightness.`,
	Run: func(cmd *cobra.Command, args []string) {
		src := harmony.DefaultSource()
		if cmd.Flags().Changed("seed") {
			src = harmony.SeededSource(lo.Must(cmd.Flags().GetUint64("seed")))
		}

		palette, baseHue := harmony.Random(src)
		emitPalette(cmd, palette, baseHue, "")
	},
}
