// Package taxa keeps NCBI taxonomy lineages in a cache keyed by taxonomy ID
// and maps each lineage to an antiSMASH taxon bucket.
//
// The package does no parsing of NCBI dumps. A Builder supplies the cache
// content, and the cache can be saved to and restored from a compact gob
// file.
//
// # Concurrency
//
// A Cache has no internal locking. Concurrent Get, NameByID and
// AntismashTaxon calls are safe while nothing calls InitialiseFromPaths or
// LoadPath on the same cache. Callers serialize those mutations themselves.
package taxa

import (
	"fmt"
)

// Unknown is the value of a rank that the lineage does not resolve.
const Unknown = "Unknown"

// Rank is a taxonomic rank stored in an Entry.
type Rank int

const (
	Species Rank = iota
	Genus
	Family
	Order
	Class
	Phylum
	Kingdom
	Superkingdom
)

// Ranks lists all ranks from the lowest to the highest.
var Ranks = []Rank{
	Species, Genus, Family, Order, Class, Phylum, Kingdom, Superkingdom,
}

var rankNames = map[Rank]string{
	Species:      "species",
	Genus:        "genus",
	Family:       "family",
	Order:        "order",
	Class:        "class",
	Phylum:       "phylum",
	Kingdom:      "kingdom",
	Superkingdom: "superkingdom",
}

func (r Rank) String() string {
	if s, ok := rankNames[r]; ok {
		return s
	}
	return fmt.Sprintf("rank(%d)", int(r))
}

// Entry is the identity and lineage of one taxon.
// Every rank field holds a name or Unknown, it is never empty when the
// Entry was created by NewEntry.
type Entry struct {
	TaxID        int64  `json:"taxId"        yaml:"tax_id"`
	Name         string `json:"name"         yaml:"name"`
	Species      string `json:"species"      yaml:"species"`
	Genus        string `json:"genus"        yaml:"genus"`
	Family       string `json:"family"       yaml:"family"`
	Order        string `json:"order"        yaml:"order"`
	Class        string `json:"class"        yaml:"class"`
	Phylum       string `json:"phylum"       yaml:"phylum"`
	Kingdom      string `json:"kingdom"      yaml:"kingdom"`
	Superkingdom string `json:"superkingdom" yaml:"superkingdom"`
}

// NewEntry creates an Entry. Ranks are given from species up to
// superkingdom, missing or empty ranks become Unknown.
func NewEntry(taxID int64, name string, ranks ...string) Entry {
	vals := make([]string, len(Ranks))
	for i := range vals {
		vals[i] = Unknown
		if i < len(ranks) && ranks[i] != "" {
			vals[i] = ranks[i]
		}
	}
	return Entry{
		TaxID:        taxID,
		Name:         name,
		Species:      vals[Species],
		Genus:        vals[Genus],
		Family:       vals[Family],
		Order:        vals[Order],
		Class:        vals[Class],
		Phylum:       vals[Phylum],
		Kingdom:      vals[Kingdom],
		Superkingdom: vals[Superkingdom],
	}
}

// Rank returns the value of the given rank.
func (e Entry) Rank(r Rank) string {
	switch r {
	case Species:
		return e.Species
	case Genus:
		return e.Genus
	case Family:
		return e.Family
	case Order:
		return e.Order
	case Class:
		return e.Class
	case Phylum:
		return e.Phylum
	case Kingdom:
		return e.Kingdom
	case Superkingdom:
		return e.Superkingdom
	}
	return Unknown
}

// String renders the entry as "name (tax_id)".
func (e Entry) String() string {
	return fmt.Sprintf("%s (%d)", e.Name, e.TaxID)
}

// AntismashTaxon returns the antiSMASH bucket of the entry.
func (e Entry) AntismashTaxon() (Bucket, error) {
	return Classify(e)
}
