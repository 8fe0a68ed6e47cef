// Package vcf provides streaming VCF parsing, mutation, and serialization.
package vcf

import "strings"

// Variant represents a single VCF record.
type Variant struct {
	Chrom  string   // Chromosome name (e.g., "12", "chr12")
	Pos    int64    // 1-based genomic position
	ID     string   // Variant identifier ("." if absent)
	Ref    string   // Reference allele
	Alt    string   // Alternate allele(s), comma-separated
	Qual   string   // Quality score, kept verbatim ("." if absent)
	Filter []string // FILTER tags; nil or empty means "."
	Info   *Info    // INFO field, insertion-ordered
	Format []string // FORMAT subfield keys (e.g., GT, GQ); nil if no samples
	Calls  []Call   // per-sample calls, in header sample order

	gtIndex int // index of GT in Format, -1 if absent
}

// Call holds one sample's subfield values, parallel to Variant.Format.
type Call struct {
	Fields []string
}

// HasFilter reports whether the FILTER column carries the given tag.
func (v *Variant) HasFilter(tag string) bool {
	for _, f := range v.Filter {
		if f == tag {
			return true
		}
	}
	return false
}

// AddFilter adds a tag to the FILTER column. Existing tags are never
// removed, except that PASS and "." denote the empty set and are
// displaced by the first real tag. Adding a tag twice is a no-op.
func (v *Variant) AddFilter(tag string) {
	if v.HasFilter(tag) {
		return
	}
	if len(v.Filter) == 1 && (v.Filter[0] == "PASS" || v.Filter[0] == ".") {
		v.Filter[0] = tag
		return
	}
	v.Filter = append(v.Filter, tag)
}

// FilterString renders the FILTER column.
func (v *Variant) FilterString() string {
	if len(v.Filter) == 0 {
		return "."
	}
	return strings.Join(v.Filter, ";")
}

// SampleCount returns the number of sample calls on the record.
func (v *Variant) SampleCount() int {
	return len(v.Calls)
}

// GT returns the parsed genotype of the i-th sample. ok is false when the
// record has no GT subfield or the sample's call is truncated before it.
func (v *Variant) GT(i int) (Genotype, bool) {
	if v.gtIndex < 0 || i < 0 || i >= len(v.Calls) {
		return Genotype{}, false
	}
	fields := v.Calls[i].Fields
	if v.gtIndex >= len(fields) {
		return Genotype{}, false
	}
	return ParseGenotype(fields[v.gtIndex]), true
}

// NullGT sets the i-th sample's genotype to the fully-missing diploid
// form "./.". Other subfields are untouched. No-op when the record has
// no GT subfield.
func (v *Variant) NullGT(i int) {
	if v.gtIndex < 0 || i < 0 || i >= len(v.Calls) {
		return
	}
	fields := v.Calls[i].Fields
	if v.gtIndex < len(fields) {
		fields[v.gtIndex] = "./."
	}
}

// NormalizeChrom returns the chromosome name without "chr" prefix.
func (v *Variant) NormalizeChrom() string {
	if len(v.Chrom) > 3 && v.Chrom[:3] == "chr" {
		return v.Chrom[3:]
	}
	return v.Chrom
}
