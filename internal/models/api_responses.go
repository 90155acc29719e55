package models

// Disclaimer is attached to every search response.
const Disclaimer = "This symptom checker is for informational purposes only and should not replace " +
	"professional medical advice. Always consult a healthcare provider for proper diagnosis and treatment."

// SearchRequest is the body of POST /symptoms/search. Query is a pointer so a
// missing field can be told apart from an empty string.
type SearchRequest struct {
	Query *string `json:"query"`
}

// RecordRequest is the body of POST /symptoms/history.
type RecordRequest struct {
	Keyword *string `json:"keyword"`
}

// AilmentResponse is an ailment together with its display style.
type AilmentResponse struct {
	Ailment
	SeverityStyle string `json:"severityStyle"`
}

// NewAilmentResponse wraps an ailment for the API.
func NewAilmentResponse(a Ailment) AilmentResponse {
	return AilmentResponse{Ailment: a, SeverityStyle: a.Style()}
}

// SearchResponse contains the ailments matched by a query.
type SearchResponse struct {
	Results    []AilmentResponse `json:"results"`
	Disclaimer string            `json:"disclaimer"`
}

// HistoryResponse lists search records.
type HistoryResponse struct {
	Searches []SearchRecord `json:"searches"`
}

// RecurringResponse lists recurring search records with an optional advisory.
type RecurringResponse struct {
	Searches  []SearchRecord `json:"searches"`
	Threshold int            `json:"threshold"`
	Advisory  string         `json:"advisory,omitempty"`
}

// RecordResponse is returned after explicitly recording a keyword.
type RecordResponse struct {
	Search SearchRecord `json:"search"`
}

// CommonSymptomsResponse lists the quick-pick symptom phrases.
type CommonSymptomsResponse struct {
	Symptoms []string `json:"symptoms"`
}

// KeywordsResponse lists the registered catalog keywords in order.
type KeywordsResponse struct {
	Keywords []string `json:"keywords"`
}

