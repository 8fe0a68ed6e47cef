package reclass

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/svpipe/batchfx/internal/vcf"
)

// RecordReader is the stream of input records.
type RecordReader interface {
	// Next reads the next record. Returns nil, nil at end of stream.
	Next() (*vcf.Variant, error)
}

// RecordWriter receives the records that survive the pass.
type RecordWriter interface {
	WriteVariant(*vcf.Variant) error
}

// Stats summarizes one labeling pass.
type Stats struct {
	Records       int            // records read
	PassedThrough int            // no table entry, written unchanged
	Reclassified  int            // table entry found, record mutated
	Dropped       int            // reclassified but no informative genotype left
	UnknownLabels map[string]int // occurrences of labels matching no rule
}

// Labeler runs the per-record reclassification pass: look up each
// record's ID in the table; absent means pass through unchanged;
// present means reclassify, then emit only if an informative genotype
// remains.
type Labeler struct {
	table        Table
	reclassifier *Reclassifier
	nulls        NullGenotypeSet
	logger       *zap.Logger
	stats        Stats
}

// NewLabeler creates a labeler over a classification table and
// reclassifier, with the default null-genotype set.
func NewLabeler(table Table, reclassifier *Reclassifier) *Labeler {
	return &Labeler{
		table:        table,
		reclassifier: reclassifier,
		nulls:        DefaultNullGenotypes(),
		logger:       zap.NewNop(),
		stats:        Stats{UnknownLabels: make(map[string]int)},
	}
}

// SetNullGenotypes overrides the genotype shapes treated as
// uninformative by the emission decision.
func (l *Labeler) SetNullGenotypes(nulls NullGenotypeSet) {
	l.nulls = nulls
}

// SetLogger sets the logger for summary and diagnostic messages.
func (l *Labeler) SetLogger(logger *zap.Logger) {
	l.logger = logger
}

// Stats returns the counters from the last Run.
func (l *Labeler) Stats() Stats {
	return l.stats
}

// Run processes the whole input stream, one record at a time, and
// flushes nothing itself; the caller owns writer lifecycle.
func (l *Labeler) Run(reader RecordReader, writer RecordWriter) error {
	for {
		v, err := reader.Next()
		if err != nil {
			return fmt.Errorf("read record: %w", err)
		}
		if v == nil {
			break
		}
		l.stats.Records++

		labels := l.table.Labels(v.ID)
		if labels == nil {
			l.stats.PassedThrough++
			if err := writer.WriteVariant(v); err != nil {
				return fmt.Errorf("write record: %w", err)
			}
			continue
		}

		l.countUnknown(labels)
		l.reclassifier.Reclassify(v, labels)
		l.stats.Reclassified++

		if !ShouldEmit(v, l.nulls) {
			l.stats.Dropped++
			l.logger.Debug("dropping record with no informative genotypes",
				zap.String("vid", v.ID),
				zap.Strings("labels", labels))
			continue
		}

		if err := writer.WriteVariant(v); err != nil {
			return fmt.Errorf("write record: %w", err)
		}
	}

	l.logSummary()
	return nil
}

// countUnknown tracks labels that match no rule. They are tolerated,
// but surfaced in the end-of-run summary so upstream table typos do not
// vanish silently.
func (l *Labeler) countUnknown(labels []string) {
	for _, label := range labels {
		if !KnownLabel(label) {
			l.stats.UnknownLabels[label]++
		}
	}
}

func (l *Labeler) logSummary() {
	l.logger.Info("labeling pass complete",
		zap.Int("records", l.stats.Records),
		zap.Int("passed_through", l.stats.PassedThrough),
		zap.Int("reclassified", l.stats.Reclassified),
		zap.Int("dropped", l.stats.Dropped))

	for label, n := range l.stats.UnknownLabels {
		l.logger.Warn("table label matched no reclassification rule",
			zap.String("label", label),
			zap.Int("occurrences", n))
	}
}
