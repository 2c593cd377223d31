package catalog

import (
	"bufio"
	"compress/gzip"
	"encoding/json"
	"fmt"
	"io"

	"brandbear/internal/model"
)

// Encode writes products as gzipped JSON lines, the format the file and S3
// loaders read.
func Encode(w io.Writer, products []model.Product) error {
	gz := gzip.NewWriter(w)
	buf := bufio.NewWriter(gz)
	enc := json.NewEncoder(buf)

	for i := range products {
		if err := products[i].Validate(); err != nil {
			return fmt.Errorf("product %d: %w", i, err)
		}
		if err := enc.Encode(&products[i]); err != nil {
			return fmt.Errorf("failed to encode product %s: %w", products[i].ID, err)
		}
	}

	if err := buf.Flush(); err != nil {
		return fmt.Errorf("failed to flush catalog: %w", err)
	}
	if err := gz.Close(); err != nil {
		return fmt.Errorf("failed to close gzip writer: %w", err)
	}
	return nil
}
