// Package ioout prints results of taxon cache queries.
package ioout

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/gnames/mibigtaxa/pkg/taxa"
	"gopkg.in/yaml.v3"
)

// Result is the outcome of one query. Only the field requested by the
// query is set, or Error when the query failed.
type Result struct {
	TaxID          int64       `json:"taxId"                    yaml:"tax_id"`
	Entry          *taxa.Entry `json:"entry,omitempty"          yaml:"entry,omitempty"`
	Name           string      `json:"name,omitempty"           yaml:"name,omitempty"`
	AntismashTaxon string      `json:"antismashTaxon,omitempty" yaml:"antismash_taxon,omitempty"`
	Error          string      `json:"error,omitempty"          yaml:"error,omitempty"`
}

// ErrorResult creates a Result for a failed query.
func ErrorResult(taxID int64, err error) Result {
	return Result{TaxID: taxID, Error: ErrorText(err)}
}

// ErrorText returns a short description of err without markup.
func ErrorText(err error) string {
	var gnErr *gn.Error
	if errors.As(err, &gnErr) && gnErr.Err != nil {
		return gnErr.Err.Error()
	}
	return err.Error()
}

// Render writes results to w in "text", "json" or "yaml" format.
func Render(w io.Writer, format string, rs []Result) error {
	var bs []byte
	var err error
	switch format {
	case "json":
		enc := gnfmt.GNjson{Pretty: true}
		bs, err = enc.Encode(rs)
		bs = append(bs, '\n')
	case "yaml":
		bs, err = yaml.Marshal(rs)
	case "text", "":
		bs = []byte(renderText(rs))
	default:
		err = fmt.Errorf("unknown output format %q", format)
	}
	if err != nil {
		return err
	}
	_, err = w.Write(bs)
	return err
}

func renderText(rs []Result) string {
	var sb strings.Builder
	for _, r := range rs {
		switch {
		case r.Error != "":
			fmt.Fprintf(&sb, "%d\terror: %s\n", r.TaxID, r.Error)
		case r.Entry != nil:
			fmt.Fprintf(&sb, "%d\t%s\n", r.TaxID, r.Entry)
			for _, rank := range slices.Backward(taxa.Ranks) {
				fmt.Fprintf(&sb, "  %-12s %s\n", rank, r.Entry.Rank(rank))
			}
		case r.AntismashTaxon != "":
			fmt.Fprintf(&sb, "%d\t%s\n", r.TaxID, r.AntismashTaxon)
		default:
			fmt.Fprintf(&sb, "%d\t%s\n", r.TaxID, r.Name)
		}
	}
	return sb.String()
}
