package cmd

import (
	"os"

	"github.com/huewheel/huewheel/export"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(schemaCmd)
	schemaCmd.Flags().Bool("scheme", false, "Describe exported schemes instead of palettes")
	schemaCmd.SetOut(os.Stdout)
}

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of exported files",
	Run: func(cmd *cobra.Command, args []string) {
		var doc export.Document = export.Palette{}
		if lo.Must(cmd.Flags().GetBool("scheme")) {
			doc = export.Scheme{}
		}

		data, err := export.Schema(doc)
		handleErr(err)
		cmd.Println(string(data))
	},
}
