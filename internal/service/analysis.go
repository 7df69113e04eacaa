package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/atstailor/resume-tailor/internal/domain"
	"github.com/atstailor/resume-tailor/internal/llm"
)

const (
	// DefaultLLMTimeout bounds one analysis call end to end, retries included.
	DefaultLLMTimeout = 60 * time.Second

	llmAttempts = 3
)

// AnalysisService runs the resume/JD comparison pipeline: build the prompt,
// call the upstream model, normalize the response.
type AnalysisService struct {
	client  llm.Client
	timeout time.Duration
}

// NewAnalysisService creates an AnalysisService. A non-positive timeout
// falls back to DefaultLLMTimeout.
func NewAnalysisService(client llm.Client, timeout time.Duration) *AnalysisService {
	if timeout <= 0 {
		timeout = DefaultLLMTimeout
	}
	return &AnalysisService{client: client, timeout: timeout}
}

// Analyze compares a resume against a job description and returns the
// structured result. The upstream call is bounded by the configured timeout
// and retried with backoff on transient failure.
func (s *AnalysisService) Analyze(ctx context.Context, jobDescription, resumeText string) (*domain.AnalysisResult, error) {
	if jobDescription == "" || resumeText == "" {
		return nil, fmt.Errorf("%w: job description and resume text are required", domain.ErrInvalidInput)
	}

	prompt := BuildPrompt(jobDescription, resumeText)

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	raw, err := llm.Retry(ctx, llmAttempts, func() (string, error) {
		return s.client.Complete(ctx, systemPrompt, prompt)
	})
	if err != nil {
		if ctx.Err() != nil || errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: %v", domain.ErrUpstreamTimeout, err)
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstream, err)
	}

	return Normalize(raw)
}
