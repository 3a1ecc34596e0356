package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Global flags
var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "soraserver",
	Short: "SORA ground risk, air risk and SAIL classification service",
	Long: `soraserver computes the Ground Risk Class, Air Risk Class and SAIL of a
drone operation under JARUS SORA 2.0 or SORA 2.5.

It serves the calculations over a JSON HTTP API and can also run a single
assessment from a file.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file path, TOML or YAML (defaults to $SORA_CONFIG)")
}
