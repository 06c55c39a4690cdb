package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/josiahhuergo/Harmonica/theory"
)

var rootCmd = &cobra.Command{
	Use:   "harmonica",
	Short: "Modular-arithmetic music theory toolkit",
	Long:  "Harmonica works with scales, chords and pitch-class sets over arbitrary moduli: inspect templates, search for structures, and export them to MIDI.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default .harmonica.toml)")
	rootCmd.PersistentFlags().String("catalog", "", "extra template catalog (TOML)")
}

func initConfig() {
	if cfgFile, _ := rootCmd.Flags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".harmonica")
		viper.SetConfigType("toml")
		viper.AddConfigPath(".")
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvPrefix("HARMONICA")
	viper.AutomaticEnv()
	viper.SetDefault("tonic", 60)

	// It's fine if no config file is found; we use defaults.
	_ = viper.ReadInConfig()

	if f, _ := rootCmd.Flags().GetString("catalog"); f != "" {
		viper.Set("catalog", f)
	}
}

// loadCatalog returns the default catalog, with the configured user
// catalog merged over it when one is set.
func loadCatalog() (*theory.Catalog, error) {
	path := viper.GetString("catalog")
	if path == "" {
		return theory.DefaultCatalog(), nil
	}
	return theory.LoadCatalog(path)
}
