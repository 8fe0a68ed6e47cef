package vcf

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Writer serializes VCF records to an output stream.
type Writer struct {
	w          *bufio.Writer
	file       *os.File
	gzipWriter *gzip.Writer
}

// NewWriter creates a writer for the given path. The literal values "-"
// and "stdout" write to standard output. Paths ending in ".gz" are
// gzip-compressed.
func NewWriter(path string) (*Writer, error) {
	if path == "-" || path == "stdout" {
		return NewWriterTo(os.Stdout), nil
	}

	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create vcf file: %w", err)
	}

	w := &Writer{file: file}
	if strings.HasSuffix(path, ".gz") {
		w.gzipWriter = gzip.NewWriter(file)
		w.w = bufio.NewWriter(w.gzipWriter)
	} else {
		w.w = bufio.NewWriter(file)
	}

	return w, nil
}

// NewWriterTo creates a writer over an arbitrary io.Writer.
func NewWriterTo(out io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(out)}
}

// WriteHeader writes the header lines, injecting the extra metadata
// lines immediately before the #CHROM line. The extra lines are written
// even if no record ends up using them.
func (w *Writer) WriteHeader(headerLines, extraLines []string) error {
	for _, line := range headerLines {
		if strings.HasPrefix(line, "#CHROM") {
			for _, extra := range extraLines {
				if _, err := w.w.WriteString(extra + "\n"); err != nil {
					return err
				}
			}
		}
		if _, err := w.w.WriteString(line + "\n"); err != nil {
			return err
		}
	}
	return nil
}

// WriteVariant serializes a single record as a VCF line.
func (w *Writer) WriteVariant(v *Variant) error {
	var lb strings.Builder
	lb.Grow(256)

	lb.WriteString(v.Chrom)
	lb.WriteByte('\t')
	lb.WriteString(strconv.FormatInt(v.Pos, 10))
	lb.WriteByte('\t')
	lb.WriteString(v.ID)
	lb.WriteByte('\t')
	lb.WriteString(v.Ref)
	lb.WriteByte('\t')
	lb.WriteString(v.Alt)
	lb.WriteByte('\t')
	lb.WriteString(v.Qual)
	lb.WriteByte('\t')
	lb.WriteString(v.FilterString())
	lb.WriteByte('\t')
	lb.WriteString(v.Info.String())

	if len(v.Format) > 0 {
		lb.WriteByte('\t')
		lb.WriteString(strings.Join(v.Format, ":"))
		for _, call := range v.Calls {
			lb.WriteByte('\t')
			lb.WriteString(strings.Join(call.Fields, ":"))
		}
	}

	lb.WriteByte('\n')
	_, err := w.w.WriteString(lb.String())
	return err
}

// Flush flushes buffered output to the underlying stream.
func (w *Writer) Flush() error {
	return w.w.Flush()
}

// Close flushes and closes the writer and underlying file.
func (w *Writer) Close() error {
	if err := w.w.Flush(); err != nil {
		return err
	}
	if w.gzipWriter != nil {
		if err := w.gzipWriter.Close(); err != nil {
			return err
		}
	}
	if w.file != nil {
		return w.file.Close()
	}
	return nil
}
