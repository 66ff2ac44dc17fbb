package cmd

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/huewheel/huewheel/color"
	"github.com/huewheel/huewheel/constant"
	"github.com/huewheel/huewheel/filesystem"
	"github.com/huewheel/huewheel/harmony"
	"github.com/huewheel/huewheel/harmony/custom"
	"github.com/huewheel/huewheel/icon"
	"github.com/huewheel/huewheel/internal/script"
	"github.com/huewheel/huewheel/style"
	"github.com/huewheel/huewheel/util"
	"github.com/huewheel/huewheel/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(rulesCmd)
}

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Manage harmony rules",
	Long: `Manage harmony rules.
Custom rules are Lua scripts in the rules directory that define a global
function Offsets() returning hue offsets in degrees.`,
}

func init() {
	rulesCmd.AddCommand(rulesListCmd)

	rulesListCmd.Flags().BoolP("raw", "r", false, "Only print rule names")
	rulesListCmd.Flags().BoolP("custom", "c", false, "Only list custom rules")
	rulesListCmd.Flags().BoolP("builtin", "b", false, "Only list built-in rules")

	rulesListCmd.MarkFlagsMutuallyExclusive("custom", "builtin")
	rulesListCmd.SetOut(os.Stdout)
}

var rulesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available harmony rules",
	Run: func(cmd *cobra.Command, args []string) {
		raw := lo.Must(cmd.Flags().GetBool("raw"))
		headerStyle := style.New().Foreground(color.HiBlue).Bold(true).Render
		h := func(s string) {
			if !raw {
				cmd.Println(headerStyle(s))
			}
		}

		print := func(rules []harmony.Rule) {
			for _, r := range rules {
				if raw {
					cmd.Println(r.Name)
					continue
				}

				offsets := lo.Map(r.Offsets, func(o float64, _ int) string {
					return fmt.Sprintf("%g", o)
				})
				cmd.Printf("%s %s\n", r.Name, style.Faint("["+strings.Join(offsets, ", ")+"]"))
				if r.Description != "" {
					cmd.Println("  " + style.Faint(r.Description))
				}
			}
		}

		printBuiltin := func() {
			h("Builtin:")
			print(harmony.Builtins())
		}

		printCustom := func() {
			h("Custom:")
			customs, err := custom.Rules()
			handleErr(err)
			print(customs)
		}

		switch {
		case lo.Must(cmd.Flags().GetBool("builtin")):
			printBuiltin()
		case lo.Must(cmd.Flags().GetBool("custom")):
			printCustom()
		default:
			printBuiltin()
			if !raw {
				cmd.Println()
			}
			printCustom()
		}
	},
}

func completionCustomRules(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	files, err := filesystem.API().ReadDir(where.Rules())
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}

	return lo.FilterMap(files, func(item os.FileInfo, _ int) (string, bool) {
		name := item.Name()
		if !strings.HasSuffix(name, custom.Extension) {
			return "", false
		}

		return util.FileStem(name), true
	}), cobra.ShellCompDirectiveNoFileComp
}

func init() {
	rulesCmd.AddCommand(rulesRemoveCmd)
}

var rulesRemoveCmd = &cobra.Command{
	Use:               "remove <name>...",
	Short:             "Remove custom rules",
	Args:              cobra.MinimumNArgs(1),
	ValidArgsFunction: completionCustomRules,
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range args {
			path := custom.Path(name)
			handleErr(filesystem.API().Remove(path))
			script.Forget(path)
			fmt.Printf("%s removed %s\n", icon.Get(icon.Success), style.Fg(color.Yellow)(name))
		}
	},
}

func init() {
	rulesCmd.AddCommand(rulesNewCmd)
}

var rulesNewCmd = &cobra.Command{
	Use:   "new <name>",
	Short: "Scaffold a custom rule from a template",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cmd.SetOut(os.Stdout)

		name := util.SanitizeFilename(args[0])
		if _, err := harmony.ParseRule(name); err == nil {
			handleErr(fmt.Errorf("%s is a built-in rule", name))
		}

		author := "Anonymous"
		if usr, err := user.Current(); err == nil {
			author = usr.Username
		}

		s := struct {
			Name           string
			Author         string
			OffsetsFn      string
			DescriptionVar string
		}{
			Name:           name,
			Author:         author,
			OffsetsFn:      constant.RuleOffsetsFn,
			DescriptionVar: constant.RuleDescriptionVar,
		}

		funcMap := template.FuncMap{
			"repeat": strings.Repeat,
			"plus":   func(a, b int) int { return a + b },
			"max":    util.Max[int],
		}

		tmpl := lo.Must(template.New("rule").Funcs(funcMap).Parse(constant.RuleTemplate))

		target := filepath.Join(where.Rules(), name+custom.Extension)
		if exists, _ := filesystem.API().Exists(target); exists {
			handleErr(fmt.Errorf("rule %s already exists at %s", name, target))
		}

		f, err := filesystem.API().Create(target)
		handleErr(err)
		defer f.Close()

		handleErr(tmpl.Execute(f, s))
		cmd.Println(target)
	},
}

func init() {
	rulesCmd.AddCommand(rulesRunCmd)
	rulesRunCmd.Flags().Float64("hue", 0, "Base hue to build the palette on")
	rulesRunCmd.SetOut(os.Stdout)
}

var rulesRunCmd = &cobra.Command{
	Use:     "run <file>",
	Short:   "Run a rule script and print the palette it builds",
	Long:    `Load a Lua rule script from any path and print the palette it builds. Useful while writing rules.`,
	Args:    cobra.ExactArgs(1),
	Example: "  huewheel rules run ./golden.lua --hue 200",
	Run: func(cmd *cobra.Command, args []string) {
		rule, err := custom.Load(args[0])
		handleErr(err)

		palette, err := harmony.Generate(lo.Must(cmd.Flags().GetFloat64("hue")), rule)
		handleErr(err)

		printPalette(cmd, palette)
	},
}
