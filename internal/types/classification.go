package types

// Confidence is the coarse ranking tier summarizing how strongly a profile
// matches founder+stealth criteria. High sorts before Medium before Low.
type Confidence string

// Confidence tiers, in sort priority order.
const (
	ConfidenceHigh   Confidence = "High"
	ConfidenceMedium Confidence = "Medium"
	ConfidenceLow    Confidence = "Low"
)

// confidenceOrder maps tiers to their sort priority. Lower sorts first.
var confidenceOrder = map[Confidence]int{
	ConfidenceHigh:   0,
	ConfidenceMedium: 1,
	ConfidenceLow:    2,
}

// SortPriority returns the tier's position in the ranking order. Unknown
// tiers sort after Low.
func (c Confidence) SortPriority() int {
	if p, ok := confidenceOrder[c]; ok {
		return p
	}
	return len(confidenceOrder)
}

// ClassificationResult holds the founder/stealth signals attached to a
// profile after classification. Confidence is derived purely from the flags
// and indicator counts; it is never set independently.
type ClassificationResult struct {
	IsFounder         bool       `json:"is_founder"`
	IsStealth         bool       `json:"is_stealth"`
	FounderIndicators []string   `json:"founder_indicators"`
	StealthIndicators []string   `json:"stealth_indicators"`
	BonusIndicators   []string   `json:"bonus_indicators"`
	Confidence        Confidence `json:"confidence"`
	Reason            string     `json:"reason,omitempty"`
}

// Lead pairs a profile with its classification result. Leads are what the
// classifier retains and the aggregator ranks.
type Lead struct {
	Profile        Profile              `json:"profile"`
	Classification ClassificationResult `json:"classification"`
}
