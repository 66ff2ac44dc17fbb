package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/huewheel/huewheel/clipboard"
	"github.com/huewheel/huewheel/color"
	"github.com/huewheel/huewheel/colorspace"
	"github.com/huewheel/huewheel/export"
	"github.com/huewheel/huewheel/harmony"
	"github.com/huewheel/huewheel/history"
	"github.com/huewheel/huewheel/icon"
	"github.com/huewheel/huewheel/log"
	"github.com/huewheel/huewheel/style"
	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

// paletteFlags registers the output flags shared by palette producing commands.
func paletteFlags(cmd *cobra.Command) {
	cmd.Flags().BoolP("copy", "c", false, "Copy the hex codes to the clipboard")
	cmd.Flags().BoolP("export", "e", false, "Export the palette as JSON to the export directory")
	cmd.Flags().BoolP("json", "j", false, "Print the palette document as JSON")
}

func printInfo(cmd *cobra.Command, info colorspace.Info) {
	cmd.Printf("%s %s\n", style.Chip(info.Hex.String(), info.HSL.L, info.Hex.String()), style.Bold(info.Name))
	cmd.Printf("  %s %s\n", style.Faint("RGB"), info.RGB.CSS())
	cmd.Printf("  %s %s\n", style.Faint("HSL"), info.HSL.CSS())
}

func printPalette(cmd *cobra.Command, palette []colorspace.PaletteColor) {
	for _, c := range palette {
		cmd.Printf("%d. %s %s  %s  %s\n",
			c.Position+1,
			style.Chip(c.Hex.String(), c.HSL.L, c.Hex.String()),
			c.Name,
			style.Faint(c.RGB.CSS()),
			style.Faint(c.HSL.CSS()),
		)
	}
}

func success(cmd *cobra.Command, format string, args ...any) {
	cmd.Printf("%s %s\n", style.Fg(color.Green)(icon.Get(icon.Success)), fmt.Sprintf(format, args...))
}

func copyText(cmd *cobra.Command, label, text string) {
	if !clipboard.Copy(text) {
		handleErr(errors.New("failed to copy"))
	}

	success(cmd, "Copied %s: %s", label, text)
}

func exportDocument(cmd *cobra.Command, doc export.Document, message string) {
	emitter := export.NewFileEmitter()
	filename, err := export.Emit(emitter, doc)
	handleErr(err)

	success(cmd, "%s %s", message, style.Faint(emitter.Path(filename)))
}

// emitPalette prints the palette and honors --copy, --export and --json.
func emitPalette(cmd *cobra.Command, palette []colorspace.PaletteColor, baseHue float64, rule string) {
	now := time.Now()
	doc, err := export.NewPalette(palette, baseHue, rule, now)
	handleErr(err)

	if err := history.Save(palette, baseHue, rule, now); err != nil {
		log.Warnf("could not remember palette: %v", err)
	}

	if lo.Must(cmd.Flags().GetBool("json")) {
		data, err := export.Marshal(doc)
		handleErr(err)
		cmd.Println(string(data))
	} else {
		printPalette(cmd, palette)
	}

	if lo.Must(cmd.Flags().GetBool("copy")) {
		copyText(cmd, "palette", harmony.Joined(palette))
	}

	if lo.Must(cmd.Flags().GetBool("export")) {
		exportDocument(cmd, doc, "Palette downloaded successfully")
	}
}

// closest returns the candidate nearest to name by edit distance.
func closest(name string, candidates []string) string {
	return lo.MinBy(candidates, func(a, b string) bool {
		return levenshtein.Distance(name, a) < levenshtein.Distance(name, b)
	})
}

func errUnknown(what, name string, candidates []string) error {
	return fmt.Errorf(
		"unknown %s %s, did you mean %s?",
		what,
		style.Fg(color.Red)(name),
		style.Fg(color.Yellow)(closest(name, candidates)),
	)
}
