package billing

// PerformanceRecord is a performance enriched with its play, charge and credits.
type PerformanceRecord struct {
	Performance
	Play          Play  `json:"play"`
	Amount        int64 `json:"amount"`
	VolumeCredits int   `json:"volumeCredits"`
}

// StatementData is the render-ready result of a statement computation.
type StatementData struct {
	Customer           string              `json:"customer"`
	Performances       []PerformanceRecord `json:"performances"`
	TotalAmount        int64               `json:"totalAmount"`
	TotalVolumeCredits int                 `json:"totalVolumeCredits"`
}

// NewPerformanceRecord resolves the pricing of a single performance.
func NewPerformanceRecord(perf Performance, play Play) (PerformanceRecord, error) {
	amount, err := AmountFor(play, perf.Audience)
	if err != nil {
		return PerformanceRecord{}, err
	}
	credits, err := VolumeCreditsFor(play, perf.Audience)
	if err != nil {
		return PerformanceRecord{}, err
	}
	return PerformanceRecord{
		Performance:   perf,
		Play:          play,
		Amount:        amount,
		VolumeCredits: credits,
	}, nil
}

// TotalAmount sums record amounts.
func TotalAmount(records []PerformanceRecord) int64 {
	var total int64
	for _, record := range records {
		total += record.Amount
	}
	return total
}

// TotalVolumeCredits sums record volume credits.
func TotalVolumeCredits(records []PerformanceRecord) int {
	total := 0
	for _, record := range records {
		total += record.VolumeCredits
	}
	return total
}
