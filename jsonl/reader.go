package jsonl

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"
)

// ReadAll decodes every record line of the corpus file at path.
func ReadAll(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open corpus file: %w", err)
	}
	defer f.Close()

	gz, err := gzip.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read corpus file: %w", err)
	}
	defer gz.Close()

	dec := json.NewDecoder(gz)
	var records []string
	for {
		var record string
		if err := dec.Decode(&record); err != nil {
			if errors.Is(err, io.EOF) {
				return records, nil
			}
			return nil, fmt.Errorf("failed to decode corpus record %d: %w", len(records)+1, err)
		}
		records = append(records, record)
	}
}
