package reclass

// New header metadata lines describing the reclassification annotations.
// Injected before #CHROM in every output, whether or not a record uses
// them.
var (
	newFilterLines = []string{
		`##FILTER=<ID=PCRPLUS_ENRICHED,Description="Site enriched for non-reference genotypes among PCR+ samples. Likely reflects technical batch effects. All PCR- samples have been assigned null GTs for these sites.">`,
		`##FILTER=<ID=VARIABLE_ACROSS_BATCHES,Description="Site appears at variable frequencies across batches. Likely reflects technical batch effects.">`,
		`##FILTER=<ID=UNSTABLE_AF_PCRMINUS,Description="Allele frequency for this variant in PCR- samples is sensitive to choice of GQ filtering thresholds. All PCR- samples have been assigned null GTs for these sites.">`,
	}

	newInfoLines = []string{
		`##INFO=<ID=PCRPLUS_DEPLETED,Number=0,Type=Flag,Description="Site depleted for non-reference genotypes among PCR+ samples. Likely reflects technical batch effects. All PCR+ samples have been assigned null GTs for these sites.">`,
		`##INFO=<ID=UNSTABLE_AF_PCRPLUS,Number=0,Type=Flag,Description="Allele frequency for this variant in PCR+ samples is sensitive to choice of GQ filtering thresholds. All PCR+ samples have been assigned null GTs for these sites.">`,
	}
)

// HeaderLines returns the FILTER and INFO metadata lines to add to the
// output header.
func HeaderLines() []string {
	lines := make([]string, 0, len(newFilterLines)+len(newInfoLines))
	lines = append(lines, newFilterLines...)
	lines = append(lines, newInfoLines...)
	return lines
}
