package taxa_test

import (
	"testing"

	"github.com/gnames/mibigtaxa/pkg/taxa"
	"github.com/stretchr/testify/assert"
)

func TestNewEntry(t *testing.T) {
	t.Run("fills missing ranks with Unknown", func(t *testing.T) {
		e := taxa.NewEntry(1902, "Streptomyces coelicolor", "", "Streptomyces")
		assert.Equal(t, int64(1902), e.TaxID)
		assert.Equal(t, "Streptomyces coelicolor", e.Name)
		assert.Equal(t, taxa.Unknown, e.Species)
		assert.Equal(t, "Streptomyces", e.Genus)
		for _, r := range taxa.Ranks[2:] {
			assert.Equal(t, taxa.Unknown, e.Rank(r), r.String())
		}
	})

	t.Run("keeps all ranks", func(t *testing.T) {
		ranks := []string{"Homo sapiens", "Homo", "Hominidae", "Primates",
			"Mammalia", "Chordata", "Metazoa", "Eukaryota"}
		e := taxa.NewEntry(9606, "Homo sapiens", ranks...)
		for i, r := range taxa.Ranks {
			assert.Equal(t, ranks[i], e.Rank(r), r.String())
		}
	})
}

func TestEntryString(t *testing.T) {
	e := taxa.NewEntry(9606, "Homo sapiens")
	assert.Equal(t, "Homo sapiens (9606)", e.String())
}

func TestRankString(t *testing.T) {
	assert.Equal(t, "superkingdom", taxa.Superkingdom.String())
	assert.Equal(t, "class", taxa.Class.String())
	assert.Equal(t, "rank(42)", taxa.Rank(42).String())
}
