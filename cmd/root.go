// Package cmd implements the huewheel command-line interface.
package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/huewheel/huewheel/color"
	"github.com/huewheel/huewheel/constant"
	"github.com/huewheel/huewheel/icon"
	"github.com/huewheel/huewheel/key"
	"github.com/huewheel/huewheel/log"
	"github.com/huewheel/huewheel/style"
	"github.com/huewheel/huewheel/tui"
	"github.com/huewheel/huewheel/util"
	"github.com/huewheel/huewheel/where"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (e.g., nerd, emoji, squares)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.PersistentFlags().Bool("no-rules", false, "Do not load custom Lua harmony rules")

	rootCmd.Flags().StringP("page", "p", "", "Open a page directly: library, schemes or wheel")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("page", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{tui.PageLibrary, tui.PageSchemes, tui.PageWheel}, cobra.ShellCompDirectiveDefault
	}))

	// leftovers of previous runs
	go func() {
		_ = util.Delete(where.Temp())
	}()
}

var rootCmd = &cobra.Command{
	Use:   constant.Huewheel,
	Short: "Color wheel, harmonies and palettes in the terminal",
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(color.HiPurple).Render("    - Color wheel, harmonies and palettes in the terminal"),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("no-rules")) {
			viper.Set(key.RulesEnable, false)
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		page := lo.Must(cmd.Flags().GetString("page"))
		if page != "" && !lo.Contains([]string{tui.PageLibrary, tui.PageSchemes, tui.PageWheel}, page) {
			handleErr(fmt.Errorf("unknown page %q", page))
		}

		handleErr(tui.Run(&tui.Options{Page: page}))
	},
}

// Execute runs the root command.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// Replaced in tests.
var (
	stderr io.Writer = os.Stderr
	exit             = os.Exit
)

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		exit(1)
	}
}

// warn prints a precondition failure. The command still exits with status 1.
func warn(msg string) {
	log.Warn(msg)
	_, _ = fmt.Fprintf(stderr, "%s %s\n", style.Fg(color.Yellow)(icon.Get(icon.Fail)), msg)
	exit(1)
}
