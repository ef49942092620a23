// Package assistant answers ad-hoc presentation questions. It is stateless
// and independent of slide generation.
package assistant

import (
	"context"
	"strings"

	"slidecraft/pkg/errs"
)

type Answerer interface {
	Answer(ctx context.Context, question string) (string, error)
}

type Service struct {
	llm Answerer
}

func NewService(llm Answerer) *Service {
	return &Service{llm: llm}
}

// Ask validates the question, forwards it to the model, and returns the raw
// text answer. No network call is made for a blank question.
func (s *Service) Ask(ctx context.Context, question string) (string, error) {
	if strings.TrimSpace(question) == "" {
		return "", errs.New(errs.CodeEmptyInput, "question cannot be empty")
	}

	answer, err := s.llm.Answer(ctx, question)
	if err != nil {
		return "", errs.Wrap(err, errs.CodeAssistantFailed, "assistant request failed")
	}

	if strings.TrimSpace(answer) == "" {
		return "", errs.New(errs.CodeEmptyResponse, "assistant returned no text")
	}

	return answer, nil
}
