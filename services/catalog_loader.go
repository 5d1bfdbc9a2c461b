package services

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/ComputingVictor/Mercadona-Agent/models"
)

// ErrEmptyCatalog means the source yielded no valid products. A failed or
// empty load is terminal for the session: main exits instead of serving a
// partial catalog.
var ErrEmptyCatalog = errors.New("catalog source contains no valid products")

// LoadCatalog reads the scraped products CSV from a local path or an HTTP
// URL and returns the validated product set in source order.
func LoadCatalog(source string) ([]models.Product, error) {
	var r io.ReadCloser

	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		resp, err := http.Get(source)
		if err != nil {
			return nil, fmt.Errorf("fetch catalog: %w", err)
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return nil, fmt.Errorf("fetch catalog: unexpected status %s", resp.Status)
		}
		r = resp.Body
	} else {
		f, err := os.Open(source)
		if err != nil {
			return nil, fmt.Errorf("open catalog: %w", err)
		}
		r = f
	}
	defer r.Close()

	return ParseCatalog(r)
}

// ParseCatalog decodes header-keyed CSV rows into validated Products.
// Rows missing category, name or main image URL are dropped at the boundary;
// short or broken records are skipped rather than aborting the load.
func ParseCatalog(r io.Reader) ([]models.Product, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read catalog header: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	var products []models.Product
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// broken records are skipped; an I/O error is persistent
			// and makes the whole load terminal
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				continue
			}
			return nil, fmt.Errorf("read catalog: %w", err)
		}

		row := make(map[string]string, len(header))
		for i, col := range header {
			if i < len(record) {
				row[col] = record[i]
			}
		}

		if p, ok := models.NewProductFromRow(row); ok {
			products = append(products, p)
		}
	}

	if len(products) == 0 {
		return nil, ErrEmptyCatalog
	}
	return products, nil
}
