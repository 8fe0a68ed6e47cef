package reclass

import (
	"github.com/svpipe/batchfx/internal/vcf"
)

// nullTarget selects which samples a rule nulls, relative to the
// PCR-plus roster.
type nullTarget int

const (
	nullNone nullTarget = iota
	nullOutsideRoster
	nullInsideRoster
)

// rule describes the effects of one classification label. Rules fire
// independently; several may fire on one record.
type rule struct {
	label     string
	filterTag string     // FILTER tag to add, "" for none
	infoFlag  string     // INFO flag to set, "" for none
	null      nullTarget // samples to null when the rule fires
}

// The reclassification rule table. Null effects from distinct rules
// combine by union.
var rules = []rule{
	{label: LabelPCRPlusEnriched, filterTag: LabelPCRPlusEnriched, null: nullOutsideRoster},
	{label: LabelPCRPlusDepleted, infoFlag: LabelPCRPlusDepleted, null: nullInsideRoster},
	{label: LabelVariableAcrossBatches, filterTag: LabelVariableAcrossBatches},
	{label: LabelUnstableAFPCRPlus, infoFlag: LabelUnstableAFPCRPlus, null: nullOutsideRoster},
	{label: LabelUnstableAFPCRMinus, filterTag: LabelUnstableAFPCRMinus, null: nullInsideRoster},
}

// Reclassifier applies label-driven annotation and genotype nulling to
// records. The PCR-plus roster is fixed for the lifetime of the
// reclassifier; in the current pipeline wiring it is empty, so every
// sample is treated as PCR-minus.
type Reclassifier struct {
	plusSamples map[string]bool
	sampleNames []string // header sample order, parallel to record calls
}

// NewReclassifier creates a reclassifier for the given header sample
// order and PCR-plus roster. A nil roster means no PCR-plus samples.
func NewReclassifier(sampleNames []string, plusSamples []string) *Reclassifier {
	roster := make(map[string]bool, len(plusSamples))
	for _, s := range plusSamples {
		roster[s] = true
	}
	return &Reclassifier{
		plusSamples: roster,
		sampleNames: sampleNames,
	}
}

// Reclassify mutates a record according to its classification labels
// and returns it. FILTER tags are append-only, INFO flag keys are
// declared at most once, and a sample is nulled if any fired rule says
// to null it. Unknown labels fire no rule.
func (r *Reclassifier) Reclassify(v *vcf.Variant, labels []string) *vcf.Variant {
	nullOutside := false
	nullInside := false

	for _, rl := range rules {
		if !hasLabel(labels, rl.label) {
			continue
		}
		if rl.filterTag != "" {
			v.AddFilter(rl.filterTag)
		}
		if rl.infoFlag != "" {
			v.Info.SetFlag(rl.infoFlag)
		}
		switch rl.null {
		case nullOutsideRoster:
			nullOutside = true
		case nullInsideRoster:
			nullInside = true
		}
	}

	if !nullOutside && !nullInside {
		return v
	}

	for i := range v.Calls {
		inRoster := i < len(r.sampleNames) && r.plusSamples[r.sampleNames[i]]
		if (nullOutside && !inRoster) || (nullInside && inRoster) {
			v.NullGT(i)
		}
	}

	return v
}
