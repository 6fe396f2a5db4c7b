/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package cmd provides CLI commands for tokenpipe.
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/tokenpipe/cmd/ingest"
	"bennypowers.dev/tokenpipe/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "tokenpipe",
	Short: "Ingest and normalize design tokens from DTCG files and the Figma variables service",
	Long:  `tokenpipe ingests design tokens from DTCG-format JSON files and the Figma variables service and produces a single normalized token set.`,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().Bool("debug", false, "surface debug diagnostics")
	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))

	rootCmd.AddCommand(ingest.Cmd)
}

func initConfig() {
	viper.SetConfigName("design-tokens")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".config")
	viper.AddConfigPath(".")

	viper.SetEnvPrefix("TOKENPIPE")
	viper.AutomaticEnv()

	_ = viper.ReadInConfig()

	logger.SetDebug(viper.GetBool("debug"))
}
