package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/huewheel/huewheel/colorspace"
	"github.com/huewheel/huewheel/export"
	"github.com/huewheel/huewheel/key"
	"github.com/huewheel/huewheel/open"
	"github.com/huewheel/huewheel/wheel"
	"github.com/huewheel/huewheel/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(wheelCmd)

	wheelCmd.PersistentFlags().Float64("radius", wheel.DefaultRadius, "Wheel radius")
	lo.Must0(viper.BindPFlag(key.WheelRadius, wheelCmd.PersistentFlags().Lookup("radius")))

	wheelCmd.PersistentFlags().Float64("inner", wheel.DefaultInnerPercent, "Inner grayscale disk radius, in percent of the wheel radius")
	lo.Must0(viper.BindPFlag(key.WheelInnerPercent, wheelCmd.PersistentFlags().Lookup("inner")))
}

var wheelCmd = &cobra.Command{
	Use:   "wheel",
	Short: "Pick colors from the wheel or render it",
}

func init() {
	wheelCmd.AddCommand(wheelPickCmd)

	wheelPickCmd.Flags().Float64("dx", 0, "Horizontal offset from the center")
	wheelPickCmd.Flags().Float64("dy", 0, "Vertical offset from the center, growing downwards")
	wheelPickCmd.Flags().BoolP("json", "j", false, "Print as JSON")
	wheelPickCmd.SetOut(os.Stdout)
}

var wheelPickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Print the color at an offset from the wheel center",
	Long: `Print the color at an offset from the wheel center.
Nothing is printed for points outside the wheel.`,
	Example: "  huewheel wheel pick --dx 120 --dy -40",
	Run: func(cmd *cobra.Command, args []string) {
		geometry, err := wheel.FromConfig()
		handleErr(err)

		var selection wheel.Selection
		info, ok := selection.Pick(
			geometry,
			lo.Must(cmd.Flags().GetFloat64("dx")),
			lo.Must(cmd.Flags().GetFloat64("dy")),
		)
		if !ok {
			return
		}

		if lo.Must(cmd.Flags().GetBool("json")) {
			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			handleErr(encoder.Encode(export.NewColor(colorspace.PaletteColor{Info: info})))
			return
		}

		printInfo(cmd, info)
		if hue, ok := selection.BaseHue().Get(); ok {
			cmd.Printf("  Base hue %.1f°\n", hue)
		}
	},
}

func init() {
	wheelCmd.AddCommand(wheelRenderCmd)

	wheelRenderCmd.Flags().StringP("output", "o", "", "Output PNG file (defaults to color-wheel.png in the export directory)")
	wheelRenderCmd.Flags().Bool("open", false, "Open the image once rendered")
	wheelRenderCmd.SetOut(os.Stdout)
}

var wheelRenderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the wheel to a PNG image",
	Run: func(cmd *cobra.Command, args []string) {
		geometry, err := wheel.FromConfig()
		handleErr(err)

		output := lo.Must(cmd.Flags().GetString("output"))
		if output == "" {
			output = filepath.Join(where.Exports(), "color-wheel.png")
		}

		handleErr(wheel.WritePNG(geometry, output))
		success(cmd, "Rendered %s", output)

		if lo.Must(cmd.Flags().GetBool("open")) {
			handleErr(open.Start(output))
		}
	},
}
