package application

import (
	"context"
	"errors"
	"log"
	"time"

	billing "theater-billing/internal/billing/domain"
	"theater-billing/internal/observability/metrics"
)

// CatalogProvider loads the play catalog used to price invoices.
type CatalogProvider interface {
	Catalog(ctx context.Context) (billing.Catalog, error)
}

// StatementService computes statements against a catalog source.
type StatementService struct {
	catalogs   CatalogProvider
	calculator StatementCalculator
	logger     *log.Logger
}

// NewStatementService constructs a service.
func NewStatementService(catalogs CatalogProvider, logger *log.Logger) (*StatementService, error) {
	if catalogs == nil {
		return nil, errors.New("statement service: nil catalog provider")
	}
	if logger == nil {
		logger = log.Default()
	}
	return &StatementService{catalogs: catalogs, logger: logger}, nil
}

// Generate computes statement data for an invoice.
func (s *StatementService) Generate(ctx context.Context, invoice billing.Invoice) (billing.StatementData, error) {
	start := time.Now()
	result := metrics.ResultSuccess
	defer func() {
		metrics.ObserveStatementGenerate(result, time.Since(start))
	}()

	catalog, err := s.catalogs.Catalog(ctx)
	if err != nil {
		result = metrics.ResultError
		return billing.StatementData{}, err
	}
	data, err := s.calculator.Compute(invoice, catalog)
	if err != nil {
		result = metrics.ResultError
		s.logger.Printf("statement rejected: customer=%s err=%v", invoice.Customer, err)
		return billing.StatementData{}, err
	}

	metrics.AddStatementTotals(len(data.Performances), data.TotalAmount, data.TotalVolumeCredits)
	s.logger.Printf("statement generated: customer=%s performances=%d amount=%d credits=%d",
		data.Customer, len(data.Performances), data.TotalAmount, data.TotalVolumeCredits)
	return data, nil
}

// Catalog returns the current play catalog.
func (s *StatementService) Catalog(ctx context.Context) (billing.Catalog, error) {
	return s.catalogs.Catalog(ctx)
}
