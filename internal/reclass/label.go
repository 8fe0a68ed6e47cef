// Package reclass applies batch-effect reclassification labels to VCF
// records: FILTER/INFO annotation, genotype nulling, and the decision
// whether a relabeled record still carries information worth emitting.
package reclass

// Classification labels produced by the upstream batch-effect analysis.
const (
	LabelPCRPlusEnriched       = "PCRPLUS_ENRICHED"
	LabelPCRPlusDepleted       = "PCRPLUS_DEPLETED"
	LabelVariableAcrossBatches = "VARIABLE_ACROSS_BATCHES"
	LabelUnstableAFPCRPlus     = "UNSTABLE_AF_PCRPLUS"
	LabelUnstableAFPCRMinus    = "UNSTABLE_AF_PCRMINUS"
)

// KnownLabel reports whether a label matches any reclassification rule.
// Unknown labels are tolerated but fire no rule.
func KnownLabel(label string) bool {
	for _, r := range rules {
		if r.label == label {
			return true
		}
	}
	return false
}

// hasLabel reports membership in a label multiset.
func hasLabel(labels []string, label string) bool {
	for _, l := range labels {
		if l == label {
			return true
		}
	}
	return false
}
