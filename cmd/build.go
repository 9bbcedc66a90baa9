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
	"context"
	"log/slog"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/gnames/mibigtaxa/internal/iofs"
	"github.com/gnames/mibigtaxa/internal/iotaxdump"
	"github.com/gnames/mibigtaxa/pkg/config"
	"github.com/gnames/mibigtaxa/pkg/taxa"
	"github.com/spf13/cobra"
)

// getBuildCmd returns the build command.
func getBuildCmd() *cobra.Command {
	var (
		taxdump    string
		mergedDump string
		dataDir    string
		output     string
		progress   bool
	)

	buildCmd := &cobra.Command{
		Use:   "build",
		Short: "Build taxon cache from NCBI taxonomy dumps",
		Long: `Create the taxon cache from NCBI new_taxdump files.

This command:
  1. Scans MIBiG JSON entries in the data directory for taxonomy IDs
  2. Reads merged (deprecated) IDs from merged.dmp
  3. Reads lineages from rankedlineage.dmp
  4. Saves the cache file

If the data directory has no JSON files, the whole taxonomy is kept.

Examples:
  # Use files from unpacked new_taxdump.tar.gz
  mibigtaxa build -t new_taxdump -m new_taxdump -d mibig-json/

  # Save cache to a custom location
  mibigtaxa build -t rankedlineage.dmp -m merged.dmp -o taxa.cache`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var opts []config.Option
			flags := cmd.Flags()
			if flags.Changed("taxdump") {
				opts = append(opts, config.OptBuildTaxdump(taxdump))
			}
			if flags.Changed("merged") {
				opts = append(opts, config.OptBuildMergedDump(mergedDump))
			}
			if flags.Changed("datadir") {
				opts = append(opts, config.OptBuildDataDir(dataDir))
			}
			if flags.Changed("output") {
				opts = append(opts, config.OptCacheFile(output))
			}
			if flags.Changed("progress") {
				opts = append(opts, config.OptBuildWithProgress(progress))
			}
			cfg.Update(opts)
			return runBuild(cmd.Context(), cfg)
		},
	}

	buildCmd.Flags().StringVarP(&taxdump, "taxdump", "t", "",
		"rankedlineage.dmp or directory with it")
	buildCmd.Flags().StringVarP(&mergedDump, "merged", "m", "",
		"merged.dmp or directory with it")
	buildCmd.Flags().StringVarP(&dataDir, "datadir", "d", "",
		"directory with MIBiG JSON entries")
	buildCmd.Flags().StringVarP(&output, "output", "o", "",
		"cache file to create (same as --cache)")
	buildCmd.Flags().BoolVarP(&progress, "progress", "p", false,
		"show progress bars")

	return buildCmd
}

func runBuild(ctx context.Context, cfg *config.Config) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if cfg.Build.Taxdump == "" {
		return MissingInputError("taxdump", "MIBIGTAXA_BUILD_TAXDUMP")
	}
	if cfg.Build.MergedDump == "" {
		return MissingInputError("merged", "MIBIGTAXA_BUILD_MERGED_DUMP")
	}

	startTime := time.Now()
	cachePath := cfg.CachePath()
	if err := iofs.EnsureParentDir(cachePath); err != nil {
		return err
	}

	gn.Info("Building taxon cache...")
	cache := taxa.New()
	err := cache.InitialiseFromPaths(
		ctx, iotaxdump.New(cfg),
		cfg.Build.Taxdump, cfg.Build.MergedDump, cfg.Build.DataDir,
	)
	if err != nil {
		slog.Error("Cannot build taxon cache", "error", err)
		return err
	}

	n, err := cache.SavePath(cachePath)
	if err != nil {
		slog.Error("Cannot save taxon cache", "error", err)
		return err
	}

	gn.Info(
		"Saved <em>%s</em> taxa and <em>%s</em> deprecated IDs to <em>%s</em> in %s",
		humanize.Comma(int64(n)),
		humanize.Comma(int64(cache.DeprecatedLen())),
		cachePath,
		gnfmt.TimeString(time.Since(startTime).Seconds()),
	)
	return nil
}
