package reclass

import (
	"bufio"
	"fmt"
	"os"
)

// LoadSampleList reads a PCR-plus roster file, one sample name per
// line. The roster is optional pipeline configuration; the documented
// default is an empty roster, under which every sample is treated as
// PCR-minus.
func LoadSampleList(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open sample list: %w", err)
	}
	defer f.Close()

	var samples []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		name := scanner.Text()
		if name == "" {
			continue
		}
		samples = append(samples, name)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read sample list %s: %w", path, err)
	}

	return samples, nil
}
