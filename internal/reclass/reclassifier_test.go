package reclass

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/svpipe/batchfx/internal/vcf"
)

// parseRecord builds a single record from a minimal VCF with the given
// sample names.
func parseRecord(t *testing.T, samples []string, record string) *vcf.Variant {
	t.Helper()

	var b strings.Builder
	b.WriteString("##fileformat=VCFv4.2\n")
	b.WriteString("#CHROM\tPOS\tID\tREF\tALT\tQUAL\tFILTER\tINFO")
	if len(samples) > 0 {
		b.WriteString("\tFORMAT")
		for _, s := range samples {
			b.WriteString("\t" + s)
		}
	}
	b.WriteString("\n")
	b.WriteString(record + "\n")

	parser, err := vcf.NewParserFromReader(strings.NewReader(b.String()))
	require.NoError(t, err, "parsing test VCF")

	v, err := parser.Next()
	require.NoError(t, err)
	require.NotNil(t, v)
	return v
}

func gtString(t *testing.T, v *vcf.Variant, i int) string {
	t.Helper()
	gt, ok := v.GT(i)
	require.True(t, ok, "expected a GT call for sample %d", i)
	return gt.String()
}

func TestReclassify_PCRPlusEnriched_EmptyRoster(t *testing.T) {
	samples := []string{"S1", "S2", "S3"}
	v := parseRecord(t, samples,
		"chr1\t100\tvarA\tN\t<DEL>\t.\tPASS\tSVTYPE=DEL\tGT\t0/1\t0/0\t1/1")

	r := NewReclassifier(samples, nil)
	r.Reclassify(v, []string{LabelPCRPlusEnriched})

	assert.Equal(t, "PCRPLUS_ENRICHED", v.FilterString())
	// Empty roster: every sample is outside it, so all are nulled
	for i := range samples {
		assert.Equal(t, "./.", gtString(t, v, i))
	}
}

func TestReclassify_PCRPlusDepleted_EmptyRoster(t *testing.T) {
	samples := []string{"S1", "S2"}
	v := parseRecord(t, samples,
		"chr1\t100\tvarB\tN\t<DUP>\t.\tPASS\tSVTYPE=DUP\tGT\t0/1\t0/0")

	r := NewReclassifier(samples, nil)
	r.Reclassify(v, []string{LabelPCRPlusDepleted})

	// INFO flag set, FILTER untouched, no sample nulled
	assert.True(t, v.Info.Has(LabelPCRPlusDepleted))
	assert.Equal(t, "PASS", v.FilterString())
	assert.Equal(t, "0/1", gtString(t, v, 0))
	assert.Equal(t, "0/0", gtString(t, v, 1))
}

func TestReclassify_VariableAcrossBatches(t *testing.T) {
	samples := []string{"S1"}
	v := parseRecord(t, samples,
		"chr1\t100\tvarC\tN\t<INV>\t.\tLOW_CALL_RATE\tSVTYPE=INV\tGT\t0/1")

	r := NewReclassifier(samples, nil)
	r.Reclassify(v, []string{LabelVariableAcrossBatches})

	// FILTER is append-only: pre-existing tag kept
	assert.Equal(t, "LOW_CALL_RATE;VARIABLE_ACROSS_BATCHES", v.FilterString())
	assert.Equal(t, "0/1", gtString(t, v, 0))
}

func TestReclassify_UnstableAF(t *testing.T) {
	samples := []string{"S1", "S2"}

	v := parseRecord(t, samples,
		"chr1\t100\tvarD\tN\t<DEL>\t.\tPASS\t.\tGT\t0/1\t0/1")
	r := NewReclassifier(samples, nil)
	r.Reclassify(v, []string{LabelUnstableAFPCRPlus})
	assert.True(t, v.Info.Has(LabelUnstableAFPCRPlus))
	assert.Equal(t, "./.", gtString(t, v, 0))
	assert.Equal(t, "./.", gtString(t, v, 1))

	v = parseRecord(t, samples,
		"chr1\t100\tvarE\tN\t<DEL>\t.\tPASS\t.\tGT\t0/1\t0/1")
	r.Reclassify(v, []string{LabelUnstableAFPCRMinus})
	assert.Equal(t, "UNSTABLE_AF_PCRMINUS", v.FilterString())
	// Empty roster: no sample is in it, so none nulled
	assert.Equal(t, "0/1", gtString(t, v, 0))
	assert.Equal(t, "0/1", gtString(t, v, 1))
}

func TestReclassify_RosterUnionNulling(t *testing.T) {
	samples := []string{"S1", "S2", "S3"}
	roster := []string{"S1"}

	// Enriched: null every sample NOT in the roster
	v := parseRecord(t, samples,
		"chr1\t100\tvarF\tN\t<DEL>\t.\tPASS\t.\tGT\t0/1\t0/1\t0/1")
	r := NewReclassifier(samples, roster)
	r.Reclassify(v, []string{LabelPCRPlusEnriched})
	assert.Equal(t, "0/1", gtString(t, v, 0))
	assert.Equal(t, "./.", gtString(t, v, 1))
	assert.Equal(t, "./.", gtString(t, v, 2))

	// Depleted: null only roster samples
	v = parseRecord(t, samples,
		"chr1\t100\tvarG\tN\t<DEL>\t.\tPASS\t.\tGT\t0/1\t0/1\t0/1")
	r.Reclassify(v, []string{LabelPCRPlusDepleted})
	assert.Equal(t, "./.", gtString(t, v, 0))
	assert.Equal(t, "0/1", gtString(t, v, 1))
	assert.Equal(t, "0/1", gtString(t, v, 2))

	// Both: the null sets union to every sample
	v = parseRecord(t, samples,
		"chr1\t100\tvarH\tN\t<DEL>\t.\tPASS\t.\tGT\t0/1\t0/1\t0/1")
	r.Reclassify(v, []string{LabelPCRPlusEnriched, LabelPCRPlusDepleted})
	for i := range samples {
		assert.Equal(t, "./.", gtString(t, v, i))
	}
}

func TestReclassify_UnknownLabelFiresNoRule(t *testing.T) {
	samples := []string{"S1"}
	v := parseRecord(t, samples,
		"chr1\t100\tvarI\tN\t<DEL>\t.\tPASS\tSVTYPE=DEL\tGT\t0/1")

	r := NewReclassifier(samples, nil)
	r.Reclassify(v, []string{"MYSTERY_LABEL"})

	assert.Equal(t, "PASS", v.FilterString())
	assert.Equal(t, 1, v.Info.Len())
	assert.Equal(t, "0/1", gtString(t, v, 0))
}

func TestReclassify_Idempotent(t *testing.T) {
	samples := []string{"S1", "S2"}
	v := parseRecord(t, samples,
		"chr1\t100\tvarJ\tN\t<DEL>\t.\tPASS\t.\tGT\t0/1\t./.")

	r := NewReclassifier(samples, nil)
	labels := []string{LabelPCRPlusEnriched, LabelPCRPlusDepleted}

	r.Reclassify(v, labels)
	first := v.FilterString() + "|" + v.Info.String() + "|" + gtString(t, v, 0) + "|" + gtString(t, v, 1)

	r.Reclassify(v, labels)
	second := v.FilterString() + "|" + v.Info.String() + "|" + gtString(t, v, 0) + "|" + gtString(t, v, 1)

	assert.Equal(t, first, second, "running reclassification twice must equal running it once")
}

func TestKnownLabel(t *testing.T) {
	for _, label := range []string{
		LabelPCRPlusEnriched,
		LabelPCRPlusDepleted,
		LabelVariableAcrossBatches,
		LabelUnstableAFPCRPlus,
		LabelUnstableAFPCRMinus,
	} {
		assert.True(t, KnownLabel(label), label)
	}
	assert.False(t, KnownLabel("MYSTERY_LABEL"))
}
