package reclass

import "github.com/svpipe/batchfx/internal/vcf"

// NullGenotypeSet enumerates the genotype shapes that carry no
// information for the emission decision. It is configuration data, not
// logic: callers may supply their own set.
type NullGenotypeSet []vcf.Genotype

// DefaultNullGenotypes are the genotype shapes treated as uninformative
// by the batch-effect pipeline: hom-ref, fully missing (diploid and
// haploid forms), and the mixed-missing (., 2) form.
func DefaultNullGenotypes() NullGenotypeSet {
	shapes := []string{"0/0", "./.", "0", ".", "./2"}
	return ParseNullGenotypes(shapes)
}

// ParseNullGenotypes builds a set from GT-syntax shape strings.
func ParseNullGenotypes(shapes []string) NullGenotypeSet {
	set := make(NullGenotypeSet, len(shapes))
	for i, s := range shapes {
		set[i] = vcf.ParseGenotype(s)
	}
	return set
}

// Contains reports whether a genotype matches any null shape. Phasing
// is ignored.
func (s NullGenotypeSet) Contains(g vcf.Genotype) bool {
	for _, null := range s {
		if g.Equal(null) {
			return true
		}
	}
	return false
}

// ShouldEmit reports whether a reclassified record still carries at
// least one informative genotype. It short-circuits on the first sample
// whose call falls outside the null set. Records without a GT subfield
// have nothing left to suppress and are not emitted.
func ShouldEmit(v *vcf.Variant, nulls NullGenotypeSet) bool {
	for i := 0; i < v.SampleCount(); i++ {
		gt, ok := v.GT(i)
		if !ok {
			continue
		}
		if !nulls.Contains(gt) {
			return true
		}
	}
	return false
}
