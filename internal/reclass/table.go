package reclass

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Table maps a variant ID to its classification labels. Labels form a
// multiset: the same VID may carry several labels, and the same label
// may appear more than once (e.g., from both the main table and a
// supplemental list). Built once at startup, read-only afterwards.
type Table map[string][]string

// Load builds a Table from the tab-delimited reclassification table and
// the two optional unstable-AF VID lists. An empty list path disables
// that list. Any read or format error is fatal to the load.
func Load(tablePath, unstablePlusPath, unstableMinusPath string) (Table, error) {
	table, err := LoadTable(tablePath)
	if err != nil {
		return nil, err
	}

	if err := table.AddUnstableLists(unstablePlusPath, unstableMinusPath); err != nil {
		return nil, err
	}

	return table, nil
}

// AddUnstableLists merges the two optional unstable-AF VID lists into
// the table. An empty path disables that list.
func (t Table) AddUnstableLists(unstablePlusPath, unstableMinusPath string) error {
	if unstablePlusPath != "" {
		if err := t.AddVIDList(unstablePlusPath, LabelUnstableAFPCRPlus); err != nil {
			return err
		}
	}
	if unstableMinusPath != "" {
		if err := t.AddVIDList(unstableMinusPath, LabelUnstableAFPCRMinus); err != nil {
			return err
		}
	}
	return nil
}

// LoadTable reads the tab-delimited reclassification table. Each row is
// exactly two fields, (VID, label). A row with any other field count is
// a fatal format error; there is no partial recovery.
func LoadTable(path string) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open reclassification table: %w", err)
	}
	defer f.Close()

	table := make(Table)
	scanner := bufio.NewScanner(f)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := scanner.Text()
		if line == "" {
			continue
		}

		fields := strings.Split(line, "\t")
		if len(fields) != 2 {
			return nil, fmt.Errorf("reclassification table %s line %d: expected 2 tab-separated fields, found %d",
				path, lineNumber, len(fields))
		}

		table.Add(fields[0], fields[1])
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read reclassification table: %w", err)
	}

	return table, nil
}

// Add appends a label to a VID's multiset.
func (t Table) Add(vid, label string) {
	t[vid] = append(t[vid], label)
}

// Labels returns the labels for a VID, or nil if it has no entry.
func (t Table) Labels(vid string) []string {
	return t[vid]
}

// AddVIDList reads a flat VID list (one per line, trailing newline
// stripped) and appends the given label to every listed VID.
func (t Table) AddVIDList(path, label string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open VID list: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		vid := scanner.Text()
		if vid == "" {
			continue
		}
		t.Add(vid, label)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read VID list %s: %w", path, err)
	}

	return nil
}
