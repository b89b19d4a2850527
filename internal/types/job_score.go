package types

// Factor names one dimension of job/profile fit
type Factor string

// Factor constants, in evaluation order
const (
	FactorSkill    Factor = "skill"
	FactorLevel    Factor = "level"
	FactorLocation Factor = "location"
	FactorIndustry Factor = "industry"
	FactorRecency  Factor = "recency"
	FactorRemote   Factor = "remote"
)

// FactorResult is the output of a single factor scorer: a score in [0,1]
// and zero or more human-readable reasons.
type FactorResult struct {
	Score   float64  `json:"score"`
	Reasons []string `json:"reasons,omitempty"`
}

// FactorScore records one factor's contribution to an aggregate score
type FactorScore struct {
	Factor Factor  `json:"factor"`
	Score  float64 `json:"score"`
	Weight float64 `json:"weight"`
}

// JobScore is the ranking result for one job
type JobScore struct {
	Job     JobPosting    `json:"job"`
	Score   float64       `json:"score"`   // aggregate in [0,1], 2 decimals
	Reasons []string      `json:"reasons"` // at most 3
	Factors []FactorScore `json:"factors,omitempty"`
}
