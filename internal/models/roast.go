package models

// DimensionScore is one scored rubric dimension as returned by the model.
type DimensionScore struct {
	Score     float64  `json:"score"`
	Reasoning string   `json:"reasoning"`
	Examples  []string `json:"examples"`
}

// RoastDimensions holds the six fixed rubric dimensions. Field names match
// the JSON keys the model is instructed to produce.
type RoastDimensions struct {
	ValuePropClarity    DimensionScore `json:"valuePropClarity"`
	PricingConfidence   DimensionScore `json:"pricingConfidence"`
	SocialProof         DimensionScore `json:"socialProof"`
	UrgencyFomo         DimensionScore `json:"urgencyFomo"`
	CompetitorAwareness DimensionScore `json:"competitorAwareness"`
	JargonDensity       DimensionScore `json:"jargonDensity"`
}

// RoastFix is a before/after rewrite suggestion.
type RoastFix struct {
	Before      string `json:"before"`
	After       string `json:"after"`
	Explanation string `json:"explanation"`
}

// RoastResult is the full critique for one proposal. The overall score is a
// weighted aggregate computed by the model, not recomputed locally.
type RoastResult struct {
	OverallScore float64         `json:"overallScore"`
	LetterGrade  string          `json:"letterGrade"`
	Verdict      string          `json:"verdict"`
	Dimensions   RoastDimensions `json:"dimensions"`
	Roasts       []string        `json:"roasts"`
	Fixes        []RoastFix      `json:"fixes"`
	NiceThing    string          `json:"niceThing"`
}
