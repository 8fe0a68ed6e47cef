package vcf

import (
	"strconv"
	"strings"
)

// MissingAllele marks an undetermined allele (".") in a genotype call.
const MissingAllele = -1

// Genotype is a parsed GT subfield: a tuple of allele indices, with
// MissingAllele for ".". Phasing is retained for serialization but is
// irrelevant to equality.
type Genotype struct {
	Alleles []int
	Phased  bool
}

// ParseGenotype parses a GT string such as "0/1", "1|0", ".", "./." or
// "./2". Unparseable allele tokens are treated as missing.
func ParseGenotype(gt string) Genotype {
	phased := strings.ContainsRune(gt, '|')
	var sep string
	if phased {
		sep = "|"
	} else {
		sep = "/"
	}

	parts := strings.Split(gt, sep)
	alleles := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			alleles[i] = MissingAllele
			continue
		}
		alleles[i] = n
	}

	return Genotype{Alleles: alleles, Phased: phased}
}

// Equal reports whether two genotypes carry the same allele tuple.
// Phasing is ignored: "0|1" equals "0/1".
func (g Genotype) Equal(other Genotype) bool {
	if len(g.Alleles) != len(other.Alleles) {
		return false
	}
	for i, a := range g.Alleles {
		if a != other.Alleles[i] {
			return false
		}
	}
	return true
}

// String renders the genotype in GT subfield form.
func (g Genotype) String() string {
	sep := "/"
	if g.Phased {
		sep = "|"
	}

	var b strings.Builder
	for i, a := range g.Alleles {
		if i > 0 {
			b.WriteString(sep)
		}
		if a == MissingAllele {
			b.WriteByte('.')
		} else {
			b.WriteString(strconv.Itoa(a))
		}
	}
	return b.String()
}
