package domain

// AnalysisRequest carries the two documents to compare. Both fields are
// required non-empty.
type AnalysisRequest struct {
	JobDescription string `json:"jobDescription"`
	ResumeText     string `json:"resumeText"`
}

// AnalysisResult is the structured outcome of one resume/JD comparison.
// The JSON field names are a contract with the upstream model's prompt and
// must not change.
type AnalysisResult struct {
	MatchedSkills              []string `json:"matchedSkills"`
	MissingSkills              []string `json:"missingSkills"`
	ExtraKeywords              []string `json:"extraKeywords"`
	OptimizedSummary           string   `json:"optimizedSummary"`
	OptimizedExperienceBullets []string `json:"optimizedExperienceBullets"`
	AtsScore                   int      `json:"atsScore"`
	ImprovementTips            []string `json:"improvementTips"`
}
