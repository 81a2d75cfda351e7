package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(packagesCmd)
	packagesCmd.AddCommand(packagesShowCmd)
}

var packagesCmd = &cobra.Command{
	Use:   "packages",
	Short: "lists all packages in the local meta store",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		index, err := metaStore().LoadPackageIndex()
		if err != nil {
			logger.Fail(err.Error())
		}

		for _, pkg := range index.Packages {
			fmt.Printf("%-40s %s\n", pkg.UID, pkg.Name)
		}
	},
}

var packagesShowCmd = &cobra.Command{
	Use:   "show <uid>",
	Short: "prints one package with its versions",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		store := metaStore()
		uid := args[0]

		pkg, err := store.LoadPackage(uid)
		if err != nil {
			logger.Fail(err.Error())
		}

		logger.Headline(fmt.Sprintf("%s (%s)", pkg.Name, pkg.UID))
		if pkg.Description != "" {
			fmt.Println("  " + pkg.Description)
		}
		if len(pkg.Authors) != 0 {
			fmt.Println("  authors: " + strings.Join(pkg.Authors, ", "))
		}
		if pkg.ProjectURL != "" {
			fmt.Println("  url: " + pkg.ProjectURL)
		}
		if len(pkg.Recommended) != 0 {
			fmt.Println("  recommended: " + strings.Join(pkg.Recommended, ", "))
		}

		index, err := store.LoadVersionIndex(uid)
		if err != nil {
			// packages without a version index are fine
			return
		}
		fmt.Printf("  versions: (%d)\n", len(index.Versions))
		if latest := index.Latest(); latest != nil {
			fmt.Println("  latest: " + latest.Version)
		}
	},
}
