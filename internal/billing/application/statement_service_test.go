package application

import (
	"context"
	"errors"
	"io"
	"log"
	"testing"

	billing "theater-billing/internal/billing/domain"
)

type stubCatalogProvider struct {
	catalog billing.Catalog
	err     error
	calls   int
}

func (s *stubCatalogProvider) Catalog(_ context.Context) (billing.Catalog, error) {
	s.calls++
	return s.catalog, s.err
}

func TestNewStatementService_NilProvider(t *testing.T) {
	if _, err := NewStatementService(nil, nil); err == nil {
		t.Fatalf("expected error for nil provider")
	}
}

func TestStatementService_Generate(t *testing.T) {
	provider := &stubCatalogProvider{catalog: sampleCatalog()}
	svc, err := NewStatementService(provider, log.New(io.Discard, "", 0))
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	data, err := svc.Generate(context.Background(), bigCoInvoice())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if data.TotalAmount != 173000 || data.TotalVolumeCredits != 47 {
		t.Fatalf("unexpected totals %d/%d", data.TotalAmount, data.TotalVolumeCredits)
	}
	if provider.calls != 1 {
		t.Fatalf("expected one catalog load, got %d", provider.calls)
	}
}

func TestStatementService_CatalogError(t *testing.T) {
	loadErr := errors.New("catalog down")
	svc, err := NewStatementService(&stubCatalogProvider{err: loadErr}, log.New(io.Discard, "", 0))
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	if _, err := svc.Generate(context.Background(), bigCoInvoice()); !errors.Is(err, loadErr) {
		t.Fatalf("expected catalog error, got %v", err)
	}
}

func TestStatementService_UnknownPlayTypePropagates(t *testing.T) {
	catalog := billing.Catalog{"hamlet": {Name: "Hamlet", Type: "history"}}
	svc, err := NewStatementService(&stubCatalogProvider{catalog: catalog}, log.New(io.Discard, "", 0))
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	invoice := billing.Invoice{Customer: "BigCo", Performances: []billing.Performance{{PlayID: "hamlet", Audience: 1}}}
	if _, err := svc.Generate(context.Background(), invoice); !errors.Is(err, billing.ErrUnknownPlayType) {
		t.Fatalf("expected ErrUnknownPlayType, got %v", err)
	}
}
