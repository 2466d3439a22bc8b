package application

import (
	billing "theater-billing/internal/billing/domain"
)

// StatementCalculator enriches invoices into render-ready statement data.
type StatementCalculator struct{}

// Compute resolves every performance against the catalog and prices it.
// Any failure aborts the whole statement; no partial data is returned.
func (StatementCalculator) Compute(invoice billing.Invoice, catalog billing.Catalog) (billing.StatementData, error) {
	records := make([]billing.PerformanceRecord, 0, len(invoice.Performances))
	for _, perf := range invoice.Performances {
		play, err := catalog.Lookup(perf.PlayID)
		if err != nil {
			return billing.StatementData{}, err
		}
		record, err := billing.NewPerformanceRecord(perf, play)
		if err != nil {
			return billing.StatementData{}, err
		}
		records = append(records, record)
	}

	return billing.StatementData{
		Customer:           invoice.Customer,
		Performances:       records,
		TotalAmount:        billing.TotalAmount(records),
		TotalVolumeCredits: billing.TotalVolumeCredits(records),
	}, nil
}
