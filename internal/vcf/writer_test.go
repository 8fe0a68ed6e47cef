package vcf

import (
	"bytes"
	"strings"
	"testing"
)

func TestWriter_RoundTrip(t *testing.T) {
	lines := []string{
		"chr1\t10000\tsv_del_001\tN\t<DEL>\t999\tPASS\tEND=12000;SVTYPE=DEL\tGT:GQ\t0/1:99\t0/0:87",
		"chr2\t40000\tsv_inv_003\tN\t<INV>\t.\tLOW_CALL_RATE;BOTHSIDES_SUPPORT\tSVTYPE=INV;UNRESOLVED\tGT\t0|1\t./.",
		"chr3\t500\t.\tA\tT\t12.5\t.\t.",
	}

	for _, line := range lines {
		v := recordFromLine(t, line)

		var buf bytes.Buffer
		w := NewWriterTo(&buf)
		if err := w.WriteVariant(v); err != nil {
			t.Fatalf("Failed to write record: %v", err)
		}
		if err := w.Flush(); err != nil {
			t.Fatalf("Failed to flush: %v", err)
		}

		got := strings.TrimRight(buf.String(), "\n")
		if got != line {
			t.Errorf("Round trip mismatch:\n in: %s\nout: %s", line, got)
		}
	}
}

func TestWriter_HeaderInjection(t *testing.T) {
	header := []string{
		"##fileformat=VCFv4.2",
		"##FILTER=<ID=PASS,Description=\"All filters passed\">",
		"#CHROM\tPOS\tID\tREF\tALT\tQUAL\tFILTER\tINFO",
	}
	extra := []string{
		"##FILTER=<ID=VARIABLE_ACROSS_BATCHES,Description=\"x\">",
		"##INFO=<ID=PCRPLUS_DEPLETED,Number=0,Type=Flag,Description=\"y\">",
	}

	var buf bytes.Buffer
	w := NewWriterTo(&buf)
	if err := w.WriteHeader(header, extra); err != nil {
		t.Fatalf("Failed to write header: %v", err)
	}
	if err := w.Flush(); err != nil {
		t.Fatalf("Failed to flush: %v", err)
	}

	got := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	want := []string{header[0], header[1], extra[0], extra[1], header[2]}
	if len(got) != len(want) {
		t.Fatalf("Expected %d header lines, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Header line %d: got %q, want %q", i, got[i], want[i])
		}
	}
}
