package main

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/sixfiveohtwo/core/internal/config"
)

var (
	cfgFile string
	romFile string
	logFile string
	cfg     *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "sixctl",
	Short: "sixctl drives a mos6502 core from the terminal",
}

// Execute bootstraps configuration and runs the command tree.
func Execute() error {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "configuration file")
	rootCmd.PersistentFlags().StringVarP(&romFile, "rom", "r", "", "hex-encoded ROM file")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "write the CPU's log lines here instead of stderr")
	rootCmd.AddCommand(runCmd, disasmCmd, statusCmd)
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)
}

func initConfig() {
	loaded, err := config.Load(cfgFile)
	if err != nil {
		log.Fatalf("sixctl: failed to load configuration: %v", err)
	}
	cfg = loaded
}
