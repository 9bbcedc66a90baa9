// Package mibigtaxa resolves NCBI taxonomy IDs to lineages and maps them
// to antiSMASH taxon buckets.
package mibigtaxa

var (
	// Version of the application, set by ldflags.
	Version = "v0.1.0"
	// Build timestamp, set by ldflags.
	Build = "n/a"
)
