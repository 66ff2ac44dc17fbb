package cmd

import (
	"os"
	"strings"

	"github.com/huewheel/huewheel/color"
	"github.com/huewheel/huewheel/config"
	"github.com/huewheel/huewheel/constant"
	"github.com/huewheel/huewheel/style"
	"github.com/huewheel/huewheel/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"golang.org/x/exp/slices"
)

func init() {
	rootCmd.AddCommand(envCmd)
	envCmd.Flags().BoolP("set-only", "s", false, "Only show variables that are set")
	envCmd.Flags().BoolP("unset-only", "u", false, "Only show variables that are unset")

	envCmd.MarkFlagsMutuallyExclusive("set-only", "unset-only")
}

var envCmd = &cobra.Command{
	Use:   "env",
	Short: "List the environment variables huewheel reads",
	Long:  `List the environment variables huewheel reads, with their values in the current process.
Variables from the .env file in the config directory are included.`,
	Run: func(cmd *cobra.Command, args []string) {
		setOnly := lo.Must(cmd.Flags().GetBool("set-only"))
		unsetOnly := lo.Must(cmd.Flags().GetBool("unset-only"))

		exposed := append(slices.Clone(config.EnvExposed), where.EnvConfigPath)
		slices.Sort(exposed)
		for _, env := range exposed {
			if env != where.EnvConfigPath {
				env = strings.ToUpper(constant.Huewheel + "_" + config.EnvKeyReplacer.Replace(env))
			}
			value := os.Getenv(env)
			present := value != ""

			if setOnly || unsetOnly {
				if !present && setOnly {
					continue
				}

				if present && unsetOnly {
					continue
				}
			}

			cmd.Print(style.New().Bold(true).Foreground(color.Purple).Render(env))
			cmd.Print("=")

			if present {
				cmd.Println(style.Fg(color.Green)(value))
			} else {
				cmd.Println(style.Fg(color.Red)("unset"))
			}
		}
	},
}
