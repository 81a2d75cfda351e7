package cmd

import (
	"os"

	"github.com/mcmeta/mcmeta/pkg/meta"
	"github.com/mcmeta/mcmeta/pkg/mojang"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(validateCmd)
	validateCmd.Flags().String("format", "meta", "file format, \"meta\" or \"mojang\"")
}

var validateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "validates a version file",
	Long: `Decodes a version file and reports structural problems (missing fields,
unknown format versions, bad enum values) and semantic warnings.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		format, _ := cmd.Flags().GetString("format")

		data, err := os.ReadFile(args[0])
		if err != nil {
			logger.Fail(err.Error())
		}

		switch format {
		case "mojang":
			if _, err := mojang.ParseVersionFile(data); err != nil {
				logger.Fail(err.Error())
			}
		case "meta":
			version, err := meta.ParseVersionFile(data)
			if err != nil {
				logger.Fail(err.Error())
			}

			problems := version.Validate()
			for _, problem := range problems {
				if problem.Level == meta.ErrorLevelFatal {
					logger.Info("✗ " + problem.Path + ": " + problem.Error())
				} else {
					logger.Warn(problem.Path + ": " + problem.Error())
				}
			}
			if problems.Fatal() != nil {
				os.Exit(1)
			}
		default:
			logger.Fail("unknown format \"" + format + "\" (try \"meta\" or \"mojang\")")
		}

		logger.Info(args[0] + " is valid")
	},
}
