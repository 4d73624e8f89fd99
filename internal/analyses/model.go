package analyses

// AnalyzeRequest is the body of POST /analyze. Whitespace-only text is
// accepted; only missing or empty fields are rejected.
type AnalyzeRequest struct {
	ResumeText     string `json:"resumeText" validate:"required"`
	JobDescription string `json:"jobDescription" validate:"required"`
}
