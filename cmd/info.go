package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/mcmeta/mcmeta/pkg/gradle"
	"github.com/mcmeta/mcmeta/pkg/meta"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(infoCmd)
}

var infoCmd = &cobra.Command{
	Use:   "info <specifier|file>",
	Short: "prints details about an artifact specifier or a version file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		// anything with a colon that is not a file is treated as a specifier
		if _, err := os.Stat(args[0]); err != nil && strings.Contains(args[0], ":") {
			spec, err := gradle.Parse(args[0])
			if err != nil {
				logger.Fail(err.Error())
			}
			printSpecifier(spec)
			return
		}

		data, err := os.ReadFile(args[0])
		if err != nil {
			logger.Fail(err.Error())
		}
		version, err := meta.ParseVersionFile(data)
		if err != nil {
			logger.Fail(err.Error())
		}
		printVersionFile(version)
	},
}

func printSpecifier(spec gradle.Specifier) {
	logger.Headline(spec.String())
	fmt.Println("  group:      " + spec.Group)
	fmt.Println("  artifact:   " + spec.Artifact)
	fmt.Println("  version:    " + spec.Version)
	if spec.Classifier != "" {
		fmt.Println("  classifier: " + spec.Classifier)
	}
	fmt.Println("  extension:  " + spec.Extension)
	fmt.Println("  path:       " + spec.Path())
}

func printVersionFile(version *meta.VersionFile) {
	logger.Headline(fmt.Sprintf("%s (%s) %s", version.Name, version.UID, version.Version))
	if version.Type != "" {
		fmt.Println("  type: " + version.Type)
	}
	if version.ReleaseTime != nil {
		fmt.Printf("  released: %s (%s)\n", version.ReleaseTime.Format("2006-01-02"), humanize.Time(version.ReleaseTime.Time))
	}
	if version.MainClass != "" {
		fmt.Println("  mainClass: " + version.MainClass)
	}

	for _, dep := range version.Requires {
		line := "  requires: " + dep.UID
		switch {
		case dep.Equals != "":
			line += " = " + dep.Equals
		case dep.Suggests != "":
			line += " (suggests " + dep.Suggests + ")"
		}
		fmt.Println(line)
	}

	if len(version.Libraries) != 0 {
		fmt.Printf("  libraries: (%d)\n", len(version.Libraries))
		for _, lib := range version.Libraries {
			line := "   - " + lib.Name.String()
			if size := librarySize(lib); size != 0 {
				line += " (" + humanize.Bytes(size) + ")"
			}
			fmt.Println(line)
		}
	}
}

func librarySize(lib meta.Library) uint64 {
	if lib.Downloads == nil || lib.Downloads.Artifact == nil {
		return 0
	}
	return uint64(lib.Downloads.Artifact.Size)
}
