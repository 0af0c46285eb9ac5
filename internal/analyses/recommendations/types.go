package recommendations

import "resume-engine/internal/analyses/defects"

// Recommendation is one deterministic fix derived from a defect quote.
type Recommendation struct {
	ID       string           `json:"id"`
	Category defects.Category `json:"category"`
	Priority string           `json:"priority"`
	Title    string           `json:"title"`
	Problem  string           `json:"problem"`
	Solution string           `json:"solution"`
	Impact   string           `json:"impact"`
	Before   string           `json:"before"`
	After    string           `json:"after"`
	Order    int              `json:"order"`
}

// Input is the data recommendation generation reads.
type Input struct {
	Quotes []defects.Quote
}
