package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"testing"

	"github.com/huewheel/huewheel/config"
	"github.com/huewheel/huewheel/filesystem"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func init() {
	filesystem.SetMemMapFs()
	lo.Must0(config.Setup())
}

type exitCode int

// execute runs the root command with args and captures what c prints,
// along with the exit status handleErr or warn asked for.
func execute(c *cobra.Command, args ...string) (out string, code int) {
	var buf bytes.Buffer
	c.SetOut(&buf)
	stderr = &buf
	exit = func(code int) { panic(exitCode(code)) }

	defer func() {
		c.SetOut(os.Stdout)
		stderr = os.Stderr
		exit = os.Exit
		out = buf.String()

		if r := recover(); r != nil {
			status, ok := r.(exitCode)
			if !ok {
				panic(r)
			}
			code = int(status)
		}
	}()

	// flag values survive between executions
	c.Flags().VisitAll(func(f *pflag.Flag) {
		lo.Must0(f.Value.Set(f.DefValue))
		f.Changed = false
	})

	rootCmd.SetArgs(args)
	lo.Must0(rootCmd.Execute())
	return
}

func TestHarmonyCommand(t *testing.T) {
	Convey("Given a rule and a hue", t, func() {
		out, code := execute(harmonyCmd, "harmony", "analogous", "--hue", "40", "--json")

		Convey("It prints the palette document", func() {
			So(code, ShouldEqual, 0)

			var doc map[string]any
			So(json.Unmarshal([]byte(out), &doc), ShouldBeNil)
			So(doc, ShouldContainKey, "id")
			So(doc, ShouldContainKey, "generatedAt")
			So(doc["rule"], ShouldEqual, "analogous")
			So(doc["baseHue"], ShouldEqual, 40.0)

			colors := doc["colors"].([]any)
			So(colors, ShouldHaveLength, 4)
			hsl := lo.Map(colors, func(c any, _ int) any { return c.(map[string]any)["hsl"] })
			So(hsl, ShouldResemble, []any{
				"hsl(10, 70%, 50%)", "hsl(40, 70%, 50%)", "hsl(70, 70%, 50%)", "hsl(100, 70%, 50%)",
			})
		})
	})

	Convey("Given no base color", t, func() {
		out, code := execute(harmonyCmd, "harmony", "triadic")

		Convey("It warns and exits with status 1", func() {
			So(code, ShouldEqual, 1)
			So(out, ShouldContainSubstring, "Please select a base color first")
		})
	})

	Convey("Given an unknown rule", t, func() {
		out, code := execute(harmonyCmd, "harmony", "triadc", "--hue", "10")

		Convey("It fails and suggests the closest rule", func() {
			So(code, ShouldEqual, 1)
			So(out, ShouldContainSubstring, "did you mean triadic?")
		})
	})
}

func TestWheelPickCommand(t *testing.T) {
	Convey("Given the center of the wheel", t, func() {
		out, code := execute(wheelPickCmd, "wheel", "pick", "--json")

		Convey("It prints white", func() {
			So(code, ShouldEqual, 0)

			var c map[string]string
			So(json.Unmarshal([]byte(out), &c), ShouldBeNil)
			So(c["hex"], ShouldEqual, "#ffffff")
		})
	})

	Convey("Given a point outside the rim", t, func() {
		out, code := execute(wheelPickCmd, "wheel", "pick", "--dx", "500")

		Convey("Nothing is printed", func() {
			So(code, ShouldEqual, 0)
			So(out, ShouldBeEmpty)
		})
	})
}

func TestRulesListCommand(t *testing.T) {
	Convey("Given only builtin rules", t, func() {
		out, code := execute(rulesListCmd, "rules", "list")

		Convey("They are listed under a header", func() {
			So(code, ShouldEqual, 0)
			So(out, ShouldContainSubstring, "Builtin:")
			So(out, ShouldContainSubstring, "split-complementary")
		})
	})
}
