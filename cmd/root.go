package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mcmeta/mcmeta/internals/cmdlog"
	"github.com/mcmeta/mcmeta/pkg/meta"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Version is set by the build
var Version = "dev"

// TODO: this logger should not be global
var logger *cmdlog.Logger = cmdlog.New()

var (
	cfgFile       string
	disableColors bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "mcmeta",
	Short: "Inspect launcher meta files.",
	Long:  "Parse, validate and inspect launcher version manifests, package descriptors and indexes",

	Example: `
  mcmeta validate versions/1.19.2.json
  mcmeta info org.lwjgl:lwjgl:2.9.0
  mcmeta packages`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.Version = Version
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().BoolVar(&disableColors, "no-color", false, "disable color output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.mcmeta)")
	rootCmd.PersistentFlags().String("data-dir", "", "meta data directory (default is $HOME/.mcmeta-data)")
	viper.BindPFlag("dataDir", rootCmd.PersistentFlags().Lookup("data-dir"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if disableColors || os.Getenv("CI") != "" {
		cmdlog.DisableColors()
	}

	home, err := os.UserHomeDir()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	viper.SetDefault("dataDir", filepath.Join(home, ".mcmeta-data"))

	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Search config in home directory with name ".mcmeta" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigName(".mcmeta")
	}

	viper.SetEnvPrefix("mcmeta")
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		logger.Log("Using config file: " + viper.ConfigFileUsed())
	}
}

// metaStore returns the store rooted at the configured data directory
func metaStore() *meta.Store {
	return meta.NewStore(viper.GetString("dataDir"))
}
