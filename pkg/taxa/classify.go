package taxa

// Bucket is a coarse antiSMASH taxon category.
type Bucket string

const (
	Bacteria Bucket = "bacteria"
	Fungi    Bucket = "fungi"
	Plants   Bucket = "plants"
)

func (b Bucket) String() string {
	return string(b)
}

// cond requires a rank to hold a specific value.
type cond struct {
	rank  Rank
	value string
}

// rule maps lineages that satisfy all conditions either to a bucket or,
// when bucket is empty, to a rejection that reports the value of the
// reject rank.
type rule struct {
	when   []cond
	bucket Bucket
	reject Rank
}

func (r rule) matches(e Entry) bool {
	for _, c := range r.when {
		if e.Rank(c.rank) != c.value {
			return false
		}
	}
	return true
}

func is(r Rank, v string) cond {
	return cond{rank: r, value: v}
}

// antismashRules is evaluated top-down, the first match wins.
// Red algae, diatoms and dinoflagellates go to plants for downstream
// analysis even though they are not Viridiplantae.
var antismashRules = []rule{
	{when: []cond{is(Superkingdom, "Archaea")}, bucket: Bacteria},
	{when: []cond{is(Superkingdom, "Bacteria")}, bucket: Bacteria},

	{when: []cond{is(Superkingdom, "Eukaryota"), is(Kingdom, "Fungi")},
		bucket: Fungi},
	{when: []cond{is(Superkingdom, "Eukaryota"), is(Kingdom, "Viridiplantae")},
		bucket: Plants},
	{when: []cond{is(Superkingdom, "Eukaryota"), is(Kingdom, Unknown),
		is(Phylum, "Rhodophyta")}, bucket: Plants},
	{when: []cond{is(Superkingdom, "Eukaryota"), is(Kingdom, Unknown),
		is(Phylum, "Bacillariophyta")}, bucket: Plants},
	{when: []cond{is(Superkingdom, "Eukaryota"), is(Kingdom, Unknown),
		is(Phylum, Unknown), is(Class, "Dinophyceae")}, bucket: Plants},
	{when: []cond{is(Superkingdom, "Eukaryota"), is(Kingdom, Unknown),
		is(Phylum, Unknown)}, reject: Class},
	{when: []cond{is(Superkingdom, "Eukaryota"), is(Kingdom, Unknown)},
		reject: Phylum},
	{when: []cond{is(Superkingdom, "Eukaryota")}, reject: Kingdom},

	// Metagenomes often have superkingdom Unknown, but they are
	// overwhelmingly bacterial.
	{bucket: Bacteria},
}

// Classify maps the lineage of an entry to an antiSMASH bucket.
// A lineage not covered by the rules fails with an
// InvalidAntismashTaxonError that carries the offending rank value.
func Classify(e Entry) (Bucket, error) {
	for _, r := range antismashRules {
		if !r.matches(e) {
			continue
		}
		if r.bucket == "" {
			return "", InvalidAntismashTaxonError(e.Rank(r.reject))
		}
		return r.bucket, nil
	}
	return Bacteria, nil
}
