package billing

// Performance is one invoice line item.
type Performance struct {
	PlayID   string `json:"playID" yaml:"playID"`
	Audience int    `json:"audience" yaml:"audience"`
}

// Invoice is a customer's billing request.
type Invoice struct {
	Customer     string        `json:"customer" yaml:"customer"`
	Performances []Performance `json:"performances" yaml:"performances"`
}
