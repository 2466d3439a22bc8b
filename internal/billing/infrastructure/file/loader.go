package file

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	billing "theater-billing/internal/billing/domain"
	"theater-billing/internal/observability/metrics"
)

// LoadCatalog reads a play catalog from a .json, .yaml or .yml file.
func LoadCatalog(path string) (billing.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var catalog billing.Catalog
	if err := decode(path, data, &catalog); err != nil {
		return nil, fmt.Errorf("load catalog %s: %w", path, err)
	}
	if catalog == nil {
		catalog = billing.Catalog{}
	}
	return catalog, nil
}

// LoadInvoices reads a list of invoices from a .json, .yaml or .yml file.
func LoadInvoices(path string) ([]billing.Invoice, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var invoices []billing.Invoice
	if err := decode(path, data, &invoices); err != nil {
		return nil, fmt.Errorf("load invoices %s: %w", path, err)
	}
	return invoices, nil
}

// ReadInvoice decodes a single JSON invoice, rejecting unknown fields.
func ReadInvoice(r io.Reader) (billing.Invoice, error) {
	var invoice billing.Invoice
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&invoice); err != nil {
		return billing.Invoice{}, err
	}
	return invoice, nil
}

func decode(path string, data []byte, out any) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		return dec.Decode(out)
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(out); err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		return nil
	default:
		return fmt.Errorf("unsupported file extension %q", filepath.Ext(path))
	}
}

// CatalogFile serves the catalog stored in a file, re-read on every call.
type CatalogFile struct {
	path string
}

// NewCatalogFile constructs a file-backed catalog provider.
func NewCatalogFile(path string) (*CatalogFile, error) {
	if path == "" {
		return nil, errors.New("catalog file: empty path")
	}
	return &CatalogFile{path: path}, nil
}

// Catalog loads the plays from disk.
func (f *CatalogFile) Catalog(ctx context.Context) (billing.Catalog, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	catalog, err := LoadCatalog(f.path)
	if err != nil {
		metrics.IncCatalogLoad("file", metrics.ResultError)
		return nil, err
	}
	metrics.IncCatalogLoad("file", metrics.ResultSuccess)
	return catalog, nil
}
