/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/gnames/gn"
	"github.com/gnames/mibigtaxa/internal/iofs"
	"github.com/gnames/mibigtaxa/internal/iologger"
	app "github.com/gnames/mibigtaxa/pkg"
	"github.com/gnames/mibigtaxa/pkg/config"
	"github.com/gnames/mibigtaxa/pkg/taxa"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	homeDir string
	cfg     *config.Config
)

// getRootCmd creates the root command with all subcommands attached.
func getRootCmd() *cobra.Command {
	var cacheFile string

	rootCmd := &cobra.Command{
		Version: fmt.Sprintf("version: %s\nbuild:   %s", app.Version, app.Build),
		Use:     "mibigtaxa",
		Short:   "Resolves NCBI taxonomy IDs and maps them to antiSMASH taxa",
		Long: `MIBiG taxa keeps a cache of NCBI taxonomy lineages keyed by taxonomy ID.
It resolves IDs (optionally following merged, deprecated IDs) to lineages
and classifies organisms into antiSMASH taxa: bacteria, fungi or plants.

Commands:
  - build: create the cache from NCBI new_taxdump and MIBiG entries
  - get: print lineages for taxonomy IDs
  - name: print scientific names for taxonomy IDs
  - taxon: print antiSMASH taxa for taxonomy IDs
  - stats: print the size of the cache

Configuration precedence (highest to lowest):
  1. CLI flags
  2. Environment variables (MIBIGTAXA_*)
  3. Config file (~/.config/mibigtaxa/config.yaml)
  4. Built-in defaults`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := bootstrap(); err != nil {
				return err
			}
			if cmd.Flags().Changed("cache") {
				cfg.Update([]config.Option{config.OptCacheFile(cacheFile)})
			}
			return nil
		},
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	// Remove the automatic "mibigtaxa version" prefix
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	// Override version flag to use -V (consistent with other gn projects)
	rootCmd.Flags().BoolP("version", "V", false, "version for mibigtaxa")

	rootCmd.PersistentFlags().StringVarP(&cacheFile, "cache", "c", "",
		"taxon cache file (default ~/.cache/mibigtaxa/taxa.cache)")

	rootCmd.AddCommand(
		getBuildCmd(),
		getGetCmd(),
		getNameCmd(),
		getTaxonCmd(),
		getStatsCmd(),
	)

	return rootCmd
}

func bootstrap() error {
	var err error
	homeDir, err = os.UserHomeDir()
	if err != nil {
		return err
	}

	if err = iofs.EnsureDirs(homeDir); err != nil {
		return err
	}

	// Initialize logging with hardcoded defaults
	// Will be reconfigured later with user's config settings
	defaultLog := config.New().Log
	if err = iologger.Init(config.LogDir(homeDir), defaultLog, false); err != nil {
		return err
	}

	if err = iofs.EnsureConfigFile(homeDir); err != nil {
		return err
	}

	var cfgViper *config.Config
	if cfgViper, err = initConfig(homeDir); err != nil {
		return err
	}

	cfg = config.New()
	cfg.Update(cfgViper.ToOptions())
	cfg.Update([]config.Option{config.OptHomeDir(homeDir)})

	if err = iologger.Init(config.LogDir(homeDir), cfg.Log, true); err != nil {
		return err
	}

	slog.Info("Configuration loaded",
		"config_file", config.ConfigFilePath(homeDir))
	return nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
// Invalid input (unknown IDs, unmapped taxa) exits with 2, other errors
// with 1.
func Execute() {
	err := getRootCmd().Execute()
	if err == nil {
		return
	}
	var gnErr *gn.Error
	if errors.As(err, &gnErr) {
		gn.PrintErrorMessage(err)
	} else {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	if taxa.IsValidationError(err) {
		os.Exit(2)
	}
	os.Exit(1)
}

func initConfig(home string) (*config.Config, error) {
	var err error
	cfgPath := config.ConfigFilePath(home)
	v := viper.New()
	v.SetConfigFile(cfgPath)

	initEnvVars(v)

	if err = v.ReadInConfig(); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	var res config.Config
	if err = v.Unmarshal(&res); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	return &res, nil
}

func initEnvVars(v *viper.Viper) {
	// These match the fields included in config.ToOptions() - i.e., persistent
	// configuration that can be stored in config.yaml.
	v.SetEnvPrefix("MIBIGTAXA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.BindEnv("cache_file", "MIBIGTAXA_CACHE_FILE")

	v.BindEnv("build.taxdump", "MIBIGTAXA_BUILD_TAXDUMP")
	v.BindEnv("build.merged_dump", "MIBIGTAXA_BUILD_MERGED_DUMP")
	v.BindEnv("build.data_dir", "MIBIGTAXA_BUILD_DATA_DIR")
	v.BindEnv("build.with_progress", "MIBIGTAXA_BUILD_WITH_PROGRESS")

	v.BindEnv("output.format", "MIBIGTAXA_OUTPUT_FORMAT")

	v.BindEnv("log.level", "MIBIGTAXA_LOG_LEVEL")
	v.BindEnv("log.format", "MIBIGTAXA_LOG_FORMAT")
	v.BindEnv("log.destination", "MIBIGTAXA_LOG_DESTINATION")

	v.BindEnv("jobs_number", "MIBIGTAXA_JOBS_NUMBER")

	v.AutomaticEnv()
}
