package cmd

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/huewheel/huewheel/colorspace"
	"github.com/huewheel/huewheel/export"
	"github.com/huewheel/huewheel/namer"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(convertCmd)
	convertCmd.Flags().BoolP("json", "j", false, "Print as JSON")
	convertCmd.SetOut(os.Stdout)
}

var convertCmd = &cobra.Command{
	Use:   "convert <color>",
	Short: "Show a color in hex, rgb and hsl, with its name",
	Example: `  huewheel convert "#ff8800"
  huewheel convert 255, 136, 0
  huewheel convert "rgb(255, 136, 0)"`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		info, err := colorspace.Describe(strings.Join(args, " "), namer.NameRGB)
		handleErr(err)

		if lo.Must(cmd.Flags().GetBool("json")) {
			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			handleErr(encoder.Encode(export.NewColor(colorspace.PaletteColor{Info: info})))
			return
		}

		printInfo(cmd, info)
	},
}
