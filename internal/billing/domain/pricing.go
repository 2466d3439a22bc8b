package billing

const (
	tragedyBaseAmount       = 40000
	tragedyAudienceLimit    = 30
	tragedyPerExtraSeat     = 1000
	comedyBaseAmount        = 30000
	comedyAudienceLimit     = 20
	comedyLargeAudienceFee  = 10000
	comedyPerExtraSeat      = 500
	comedyPerSeat           = 300
	creditAudienceThreshold = 30
	comedyCreditDivisor     = 5
)

// pricingRule prices a performance and awards its volume credits.
type pricingRule struct {
	amount       func(audience int) int64
	extraCredits func(audience int) int
}

var pricingRules = map[PlayType]pricingRule{
	PlayTypeTragedy: {
		amount: func(audience int) int64 {
			result := int64(tragedyBaseAmount)
			if audience > tragedyAudienceLimit {
				result += tragedyPerExtraSeat * int64(audience-tragedyAudienceLimit)
			}
			return result
		},
		extraCredits: func(int) int { return 0 },
	},
	PlayTypeComedy: {
		amount: func(audience int) int64 {
			result := int64(comedyBaseAmount)
			if audience > comedyAudienceLimit {
				result += comedyLargeAudienceFee + comedyPerExtraSeat*int64(audience-comedyAudienceLimit)
			}
			result += comedyPerSeat * int64(audience)
			return result
		},
		extraCredits: func(audience int) int { return audience / comedyCreditDivisor },
	},
}

func ruleFor(playType PlayType) (pricingRule, error) {
	rule, ok := pricingRules[playType]
	if !ok {
		return pricingRule{}, &UnknownPlayTypeError{Type: playType}
	}
	return rule, nil
}

// AmountFor returns the charge in cents for a performance of play.
func AmountFor(play Play, audience int) (int64, error) {
	rule, err := ruleFor(play.Type)
	if err != nil {
		return 0, err
	}
	return rule.amount(audience), nil
}

// VolumeCreditsFor returns the loyalty credits earned by a performance of play.
func VolumeCreditsFor(play Play, audience int) (int, error) {
	rule, err := ruleFor(play.Type)
	if err != nil {
		return 0, err
	}
	return max(audience-creditAudienceThreshold, 0) + rule.extraCredits(audience), nil
}

// Known reports whether a pricing rule exists for the type.
func (t PlayType) Known() bool {
	_, ok := pricingRules[t]
	return ok
}
