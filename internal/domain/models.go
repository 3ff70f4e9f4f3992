package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// UserContext carries the policyholder details that shape the analysis prompt.
// It is an immutable input and is never persisted on its own.
type UserContext struct {
	Name       string   `json:"name"`
	Age        int      `json:"age"`
	Conditions []string `json:"conditions"`
}

// ScenarioOutcome is the coverage verdict for one medical scenario.
// Payout and OutOfPocket are display strings ("₹4.5L", "₹0"), not parsed amounts.
type ScenarioOutcome struct {
	ID          int            `json:"id"`
	Name        string         `json:"name"`
	Status      CoverageStatus `json:"status"`
	Payout      string         `json:"payout"`
	Reason      string         `json:"reason"`
	Clause      string         `json:"clause"`
	OutOfPocket string         `json:"outOfPocket,omitempty"`
}

// PolicySummary is the structured extract of the policy document.
// Present only for live analyses; all fields may be empty.
type PolicySummary struct {
	CoverageAmount string   `json:"coverageAmount,omitempty"`
	WaitingPeriods []string `json:"waitingPeriods,omitempty"`
	Exclusions     []string `json:"exclusions,omitempty"`
	Sublimits      []string `json:"sublimits,omitempty"`
}

// Recommendation is an upsell suggestion derived from coverage gaps.
type Recommendation struct {
	Title   string  `json:"title"`
	Cost    string  `json:"cost"`
	Benefit string  `json:"benefit"`
	Urgency Urgency `json:"urgency"`
}

// AnalysisResult is the full report card for one policy analysis.
// It is built once (live pipeline or fallback) and immutable afterwards.
type AnalysisResult struct {
	VulnerabilityScore int               `json:"vulnerabilityScore"`
	TotalScenarios     int               `json:"totalScenarios"`
	Scenarios          []ScenarioOutcome `json:"scenarios"`
	PolicySummary      *PolicySummary    `json:"policySummary,omitempty"`
	Recommendations    []Recommendation  `json:"recommendations"`
	IsRealAnalysis     bool              `json:"isRealAnalysis"`
	ModelUsed          string            `json:"modelUsed,omitempty"`
}

// AnalysisRecord is the persisted form of one analysis request.
type AnalysisRecord struct {
	ID             uuid.UUID       `db:"id" json:"id"`
	UserName       string          `db:"user_name" json:"user_name"`
	UserAge        int             `db:"user_age" json:"user_age"`
	Conditions     string          `db:"conditions" json:"conditions"`
	FileName       string          `db:"file_name" json:"file_name"`
	ContentType    string          `db:"content_type" json:"content_type"`
	FileSize       int64           `db:"file_size" json:"file_size"`
	S3Bucket       string          `db:"s3_bucket" json:"-"`
	S3Key          string          `db:"s3_key" json:"-"`
	Result         json.RawMessage `db:"result" json:"result"`
	ModelUsed      string          `db:"model_used" json:"model_used,omitempty"`
	IsRealAnalysis bool            `db:"is_real_analysis" json:"is_real_analysis"`
	CreatedAt      time.Time       `db:"created_at" json:"created_at"`
}

// AnalysisResult decodes the stored result payload.
func (r *AnalysisRecord) AnalysisResult() (*AnalysisResult, error) {
	var result AnalysisResult
	if err := json.Unmarshal(r.Result, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
