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
	"strconv"

	"github.com/gnames/mibigtaxa/internal/ioout"
	"github.com/gnames/mibigtaxa/pkg/config"
	"github.com/gnames/mibigtaxa/pkg/taxa"
	"github.com/spf13/cobra"
)

// queryFunc resolves one taxonomy ID.
type queryFunc func(c *taxa.Cache, id int64, allowDeprecated bool) (ioout.Result, error)

func getGetCmd() *cobra.Command {
	return newQueryCmd(
		"get",
		"Print lineages for taxonomy IDs",
		func(c *taxa.Cache, id int64, dep bool) (ioout.Result, error) {
			e, err := c.Get(id, dep)
			if err != nil {
				return ioout.Result{}, err
			}
			return ioout.Result{TaxID: id, Entry: &e}, nil
		},
	)
}

func getNameCmd() *cobra.Command {
	return newQueryCmd(
		"name",
		"Print scientific names for taxonomy IDs",
		func(c *taxa.Cache, id int64, dep bool) (ioout.Result, error) {
			name, err := c.NameByID(id, dep)
			if err != nil {
				return ioout.Result{}, err
			}
			return ioout.Result{TaxID: id, Name: name}, nil
		},
	)
}

func getTaxonCmd() *cobra.Command {
	return newQueryCmd(
		"taxon",
		"Print antiSMASH taxa (bacteria, fungi, plants) for taxonomy IDs",
		func(c *taxa.Cache, id int64, dep bool) (ioout.Result, error) {
			bucket, err := c.AntismashTaxon(id, dep)
			if err != nil {
				return ioout.Result{}, err
			}
			return ioout.Result{TaxID: id, AntismashTaxon: bucket.String()}, nil
		},
	)
}

// newQueryCmd creates a command that runs q for every ID argument.
// All IDs are printed, the command fails with the first lookup error.
func newQueryCmd(use, short string, q queryFunc) *cobra.Command {
	var (
		allowDeprecated bool
		format          string
	)

	res := &cobra.Command{
		Use:   use + " ID [ID...]",
		Short: short,
		Long: short + `.

By default only current taxonomy IDs are resolved. With --deprecated
merged IDs are followed to the taxa that replaced them.

Exit status is 2 if some ID was not found or could not be mapped.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("format") {
				cfg.Update([]config.Option{config.OptOutputFormat(format)})
			}
			ids, err := parseIDs(args)
			if err != nil {
				return err
			}
			cache, err := taxa.Open(cfg.CachePath())
			if err != nil {
				return err
			}
			return runQuery(cmd, cache, ids, allowDeprecated, q)
		},
	}

	res.Flags().BoolVarP(&allowDeprecated, "deprecated", "D", false,
		"follow merged (deprecated) taxonomy IDs")
	res.Flags().StringVarP(&format, "format", "f", "",
		"output format: text, json, yaml")

	return res
}

func runQuery(
	cmd *cobra.Command,
	cache *taxa.Cache,
	ids []int64,
	allowDeprecated bool,
	q queryFunc,
) error {
	var firstErr error
	rs := make([]ioout.Result, 0, len(ids))
	for _, id := range ids {
		r, err := q(cache, id, allowDeprecated)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			r = ioout.ErrorResult(id, err)
		}
		rs = append(rs, r)
	}

	if err := ioout.Render(cmd.OutOrStdout(), cfg.Output.Format, rs); err != nil {
		return err
	}
	return firstErr
}

func parseIDs(args []string) ([]int64, error) {
	res := make([]int64, len(args))
	for i, s := range args {
		id, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil, BadTaxIDError(s, err)
		}
		res[i] = id
	}
	return res, nil
}
