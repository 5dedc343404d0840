// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the medconnect CLI, the workflow
// surface around the triage-and-allocation engine: symptom analysis,
// doctor allocation, workload reporting, and directory management.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cibinnnnnn/medconnect/internal/allocate"
	"github.com/cibinnnnnn/medconnect/internal/analyze"
	"github.com/cibinnnnnn/medconnect/internal/directory"
	"github.com/cibinnnnnn/medconnect/internal/knowledge"
	"github.com/cibinnnnnn/medconnect/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the medconnect CLI.
var rootCmd = &cobra.Command{
	Use:   "medconnect",
	Short: "Symptom triage and doctor allocation engine",
	Long: `medconnect analyzes free-text symptom descriptions and allocates
doctors. The triage engine maps symptoms to a medical specialization with a
severity tier and a calibrated confidence score; the allocation engine ranks
candidate doctors by specialization fit, current workload, and availability.

Doctors and appointments live in a local SQLite directory managed through
the doctors and appointments subcommands.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./medconnect.yaml or ~/.config/medconnect/config.yaml)")
	rootCmd.PersistentFlags().String("data-dir", "", "directory for the SQLite database (default: data)")
	rootCmd.PersistentFlags().String("knowledge-file", "", "knowledge base YAML (default: embedded)")

	viper.BindPFlag("directory.data_dir", rootCmd.PersistentFlags().Lookup("data-dir"))
	viper.BindPFlag("knowledge.file", rootCmd.PersistentFlags().Lookup("knowledge-file"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("medconnect")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "medconnect"))
		}
	}

	viper.SetEnvPrefix("MEDCONNECT")
	viper.AutomaticEnv()

	viper.SetDefault("directory.data_dir", "data")
	viper.SetDefault("allocation.window_days", 7)

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// engineConfig assembles the engine configuration from viper.
func engineConfig() types.EngineConfig {
	return types.EngineConfig{
		Knowledge:  types.KnowledgeConfig{File: viper.GetString("knowledge.file")},
		Directory:  types.DirectoryConfig{DataDir: viper.GetString("directory.data_dir")},
		Allocation: types.AllocationConfig{WindowDays: viper.GetInt("allocation.window_days")},
	}
}

// loadBase loads and validates the knowledge base.
func loadBase(cfg types.EngineConfig) (*knowledge.Base, error) {
	base, err := knowledge.Load(cfg.Knowledge.File)
	if err != nil {
		return nil, err
	}
	return base, nil
}

// buildAnalyzer constructs the symptom analyzer, fitting the index.
func buildAnalyzer(cfg types.EngineConfig) (*analyze.Analyzer, error) {
	base, err := loadBase(cfg)
	if err != nil {
		return nil, err
	}
	return analyze.New(base)
}

// openAllocator opens the directory store and wires the allocator over
// it. The caller must Close the returned store.
func openAllocator(cfg types.EngineConfig) (*allocate.Allocator, *directory.Store, error) {
	base, err := loadBase(cfg)
	if err != nil {
		return nil, nil, err
	}
	store, err := directory.Open(cfg.Directory)
	if err != nil {
		return nil, nil, err
	}
	return allocate.New(store, store, base, cfg.Allocation), store, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
