package iotaxdump

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/mibigtaxa/internal/iotesting"
	"github.com/gnames/mibigtaxa/pkg/config"
	"github.com/gnames/mibigtaxa/pkg/errcode"
	"github.com/gnames/mibigtaxa/pkg/taxa"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const lineageDmp = "1902\t|\tStreptomyces coelicolor\t|\t\t|\tStreptomyces\t|\tStreptomycetaceae\t|\tKitasatosporales\t|\tActinomycetes\t|\tActinomycetota\t|\t\t|\tBacteria\t|\n" +
	"5061\t|\tAspergillus niger\t|\t\t|\tAspergillus\t|\tAspergillaceae\t|\tEurotiales\t|\tEurotiomycetes\t|\tAscomycota\t|\tFungi\t|\tEukaryota\t|\n" +
	"2880\t|\tEctocarpus siliculosus\t|\t\t|\tEctocarpus\t|\tEctocarpaceae\t|\tEctocarpales\t|\tPhaeophyceae\t|\t\t|\t\t|\tEukaryota\t|\n" +
	"\n" +
	"408172\t|\tmarine metagenome\t|\t\t|\t\t|\t\t|\t\t|\t\t|\t\t|\t\t|\t\t|\n"

const mergedDmp = "100226\t|\t1902\t|\n" +
	"5062\t|\t5063\t|\n" +
	"5063\t|\t5061\t|\n" +
	"77\t|\t99999\t|\n"

func writeDumps(t *testing.T, lineage, merged string) string {
	return iotesting.WriteTaxdump(t, lineage, merged)
}

func writeEntries(t *testing.T, entries map[string]string) string {
	return iotesting.WriteFiles(t, entries)
}

func testBuilder() taxa.Builder {
	cfg := config.New()
	cfg.Update([]config.Option{config.OptJobsNumber(2)})
	return New(cfg)
}

func requireCode(t *testing.T, err error, code gn.ErrorCode) {
	t.Helper()
	require.Error(t, err)
	var gnErr *gn.Error
	require.True(t, errors.As(err, &gnErr))
	assert.Equal(t, code, gnErr.Code)
}

func TestSplitLine(t *testing.T) {
	tests := []struct {
		msg  string
		line string
		res  []string
	}{
		{"merged", "12\t|\t34\t|", []string{"12", "34"}},
		{"windows line end", "12\t|\t34\t|\r", []string{"12", "34"}},
		{"empty fields", "1\t|\troot\t|\t\t|", []string{"1", "root", ""}},
	}
	for _, v := range tests {
		assert.Equal(t, v.res, splitLine(v.line), v.msg)
	}
}

func TestFlattenMerged(t *testing.T) {
	m := map[int64]int64{1: 2, 2: 3, 3: 4, 10: 11}
	require.NoError(t, flattenMerged(m))
	assert.Equal(t, map[int64]int64{1: 4, 2: 4, 3: 4, 10: 11}, m)

	cycle := map[int64]int64{1: 2, 2: 1}
	assert.Error(t, flattenMerged(cycle))

	self := map[int64]int64{5: 5}
	assert.Error(t, flattenMerged(self))
}

func TestParseLineage(t *testing.T) {
	fields := splitLine("2880\t|\tEctocarpus siliculosus\t|\t\t|\tEctocarpus\t|\tEctocarpaceae\t|\tEctocarpales\t|\tPhaeophyceae\t|\t\t|\t\t|\tEukaryota\t|")
	e, err := parseLineage(1, fields)
	require.NoError(t, err)
	assert.Equal(t, int64(2880), e.TaxID)
	assert.Equal(t, "Ectocarpus siliculosus", e.Name)
	assert.Equal(t, taxa.Unknown, e.Species)
	assert.Equal(t, "Ectocarpus", e.Genus)
	assert.Equal(t, "Phaeophyceae", e.Class)
	assert.Equal(t, taxa.Unknown, e.Phylum)
	assert.Equal(t, taxa.Unknown, e.Kingdom)
	assert.Equal(t, "Eukaryota", e.Superkingdom)

	_, err = parseLineage(7, []string{"1", "root"})
	assert.ErrorContains(t, err, "line 7")

	_, err = parseLineage(8, splitLine("x\t|\troot\t|\t\t|\t\t|\t\t|\t\t|\t\t|\t\t|\t\t|\t\t|"))
	assert.ErrorContains(t, err, "bad tax_id")

	_, err = parseLineage(9, splitLine("3\t|\t\t|\t\t|\t\t|\t\t|\t\t|\t\t|\t\t|\t\t|\tBacteria\t|"))
	assert.ErrorContains(t, err, "empty tax_name")
}

func TestBuildWholeTaxonomy(t *testing.T) {
	dir := writeDumps(t, lineageDmp, mergedDmp)

	for _, dataDir := range []string{"", t.TempDir()} {
		d, err := testBuilder().Build(context.Background(), dir, dir, dataDir)
		require.NoError(t, err)
		require.NoError(t, d.Validate())

		assert.Len(t, d.Mappings, 4)
		assert.Equal(t, map[int64]int64{100226: 1902, 5062: 5061, 5063: 5061},
			d.DeprecatedIDs, "dangling merge 77 is dropped, chains flattened")

		meta := d.Mappings[408172]
		assert.Equal(t, "marine metagenome", meta.Name)
		assert.Equal(t, taxa.Unknown, meta.Superkingdom)
	}
}

func TestBuildWithProgress(t *testing.T) {
	dir := writeDumps(t, lineageDmp, mergedDmp)
	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptJobsNumber(1),
		config.OptBuildWithProgress(true),
	})

	d, err := New(cfg).Build(context.Background(), dir, dir, "")
	require.NoError(t, err)
	require.NoError(t, d.Validate())
	assert.Len(t, d.Mappings, 4)
	assert.Equal(t, "Aspergillus niger", d.Mappings[5061].Name)
	assert.Equal(t, int64(5061), d.DeprecatedIDs[5062])
}

func TestBuildFilePaths(t *testing.T) {
	dir := writeDumps(t, lineageDmp, mergedDmp)
	d, err := testBuilder().Build(context.Background(),
		filepath.Join(dir, lineageFile), filepath.Join(dir, mergedFile), "")
	require.NoError(t, err)
	assert.Len(t, d.Mappings, 4)
}

func TestBuildWithDataDir(t *testing.T) {
	dumps := writeDumps(t, lineageDmp, mergedDmp)
	entries := writeEntries(t, map[string]string{
		"BGC0000001.json":    `{"cluster": {"ncbi_tax_id": "1902", "organism_name": "S. coelicolor"}}`,
		"v4/BGC0000002.json": `{"accession": "BGC0000002", "taxonomy": {"name": "A. niger", "ncbiTaxId": 5062}}`,
		"BGC0000003.json":    `{"cluster": {"ncbi_tax_id": 123456}}`,
		"BGC0000004.json":    `{"cluster": {}}`,
		"notes/readme.txt":   "not an entry",
	})

	d, err := testBuilder().Build(context.Background(), dumps, dumps, entries)
	require.NoError(t, err)
	require.NoError(t, d.Validate())

	assert.Len(t, d.Mappings, 2)
	assert.Contains(t, d.Mappings, int64(1902))
	assert.Contains(t, d.Mappings, int64(5061))
	assert.Equal(t, map[int64]int64{5062: 5061}, d.DeprecatedIDs)
}

func TestBuildErrors(t *testing.T) {
	ctx := context.Background()
	good := writeDumps(t, lineageDmp, mergedDmp)

	t.Run("missing taxdump", func(t *testing.T) {
		_, err := testBuilder().Build(ctx,
			filepath.Join(t.TempDir(), "none.dmp"), good, "")
		requireCode(t, err, errcode.BuildTaxdumpError)
	})

	t.Run("missing merged dump", func(t *testing.T) {
		_, err := testBuilder().Build(ctx,
			good, filepath.Join(t.TempDir(), "none.dmp"), "")
		requireCode(t, err, errcode.BuildMergedDumpError)
	})

	t.Run("malformed taxdump", func(t *testing.T) {
		bad := writeDumps(t, "1\t|\troot\t|\n", mergedDmp)
		_, err := testBuilder().Build(ctx, bad, bad, "")
		requireCode(t, err, errcode.BuildTaxdumpError)
	})

	t.Run("malformed merged dump", func(t *testing.T) {
		bad := writeDumps(t, lineageDmp, "abc\t|\t1\t|\n")
		_, err := testBuilder().Build(ctx, bad, bad, "")
		requireCode(t, err, errcode.BuildMergedDumpError)
	})

	t.Run("merged cycle", func(t *testing.T) {
		bad := writeDumps(t, lineageDmp, "1\t|\t2\t|\n2\t|\t1\t|\n")
		_, err := testBuilder().Build(ctx, bad, bad, "")
		requireCode(t, err, errcode.BuildMergedDumpError)
	})

	t.Run("broken MIBiG entry", func(t *testing.T) {
		entries := writeEntries(t, map[string]string{
			"BGC0000001.json": `{"cluster": {"ncbi_tax_id": "abc"}}`,
		})
		_, err := testBuilder().Build(ctx, good, good, entries)
		requireCode(t, err, errcode.BuildDataDirError)
	})

	t.Run("missing data dir", func(t *testing.T) {
		_, err := testBuilder().Build(ctx, good, good,
			filepath.Join(t.TempDir(), "nothing"))
		requireCode(t, err, errcode.BuildDataDirError)
	})
}

func TestBuildIntoCache(t *testing.T) {
	dir := writeDumps(t, lineageDmp, mergedDmp)
	c := taxa.New()
	err := c.InitialiseFromPaths(context.Background(), testBuilder(), dir, dir, "")
	require.NoError(t, err)

	bucket, err := c.AntismashTaxon(5062, true)
	require.NoError(t, err)
	assert.Equal(t, taxa.Fungi, bucket)

	bucket, err = c.AntismashTaxon(408172, false)
	require.NoError(t, err)
	assert.Equal(t, taxa.Bacteria, bucket)

	_, err = c.AntismashTaxon(2880, false)
	assert.True(t, taxa.IsInvalidAntismashTaxon(err), "brown algae are rejected")
}
