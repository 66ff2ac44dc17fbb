package cmd

import (
	"errors"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/huewheel/huewheel/colorspace"
	"github.com/huewheel/huewheel/harmony"
	"github.com/huewheel/huewheel/harmony/custom"
	"github.com/huewheel/huewheel/key"
	"github.com/huewheel/huewheel/namer"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(harmonyCmd)

	harmonyCmd.Flags().Float64("hue", 0, "Base hue in degrees")
	harmonyCmd.Flags().String("color", "", "Base color as hex or r, g, b")
	harmonyCmd.MarkFlagsMutuallyExclusive("hue", "color")
	paletteFlags(harmonyCmd)

	harmonyCmd.SetOut(os.Stdout)
}

func completionRules(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	return harmony.Names(custom.All()), cobra.ShellCompDirectiveNoFileComp
}

// baseHueFromFlags reads --hue or --color. None means no base color was given.
func baseHueFromFlags(cmd *cobra.Command) mo.Option[float64] {
	if cmd.Flags().Changed("hue") {
		return mo.Some(colorspace.NormalizeHue(lo.Must(cmd.Flags().GetFloat64("hue"))))
	}

	if c := lo.Must(cmd.Flags().GetString("color")); c != "" {
		info, err := colorspace.Describe(c, namer.NameRGB)
		handleErr(err)
		return mo.Some(info.HSL.H)
	}

	return mo.None[float64]()
}

func promptRule(rules []harmony.Rule) string {
	var answer string
	handleErr(survey.AskOne(&survey.Select{
		Message: "Harmony rule",
		Options: harmony.Names(rules),
		Default: viper.GetString(key.HarmonyDefaultRule),
	}, &answer))

	return answer
}

var harmonyCmd = &cobra.Command{
	Use:   "harmony [rule]",
	Short: "Build a palette from a base hue and a harmony rule",
	Long: `Build a palette from a base hue and a harmony rule.
The rule is asked for when omitted. Colors are rendered at 70% saturation and 50% lightness.`,
	Example: `  huewheel harmony triadic --hue 200
  huewheel harmony split-complementary --color "#3b82f6" --export`,
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completionRules,
	Run: func(cmd *cobra.Command, args []string) {
		baseHue := baseHueFromFlags(cmd)
		rules := custom.All()

		var name string
		if len(args) > 0 {
			name = args[0]
		} else if baseHue.IsPresent() {
			name = promptRule(rules)
		}

		rule, err := harmony.Find(lo.Ternary(name == "", viper.GetString(key.HarmonyDefaultRule), name), rules)
		handleErr(err)

		palette, err := harmony.ForSelection(baseHue, rule)
		if errors.Is(err, harmony.ErrNoBaseColor) {
			warn("Please select a base color first with --hue or --color")
		}
		handleErr(err)

		emitPalette(cmd, palette, baseHue.MustGet(), rule.Name)
	},
}
