package stepExtract

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/t-kuni/aspa/domain/external/azureOpenAi"
	"github.com/t-kuni/aspa/domain/model/prompts/troubleshoot"
)

const headerPhrase = "troubleshooting steps"

type StepExtractService struct {
	client    azureOpenAi.Client
	maxTokens int
}

func NewStepExtractService(client azureOpenAi.Client, maxTokens int) *StepExtractService {
	return &StepExtractService{
		client:    client,
		maxTokens: maxTokens,
	}
}

// Result keeps the exchange alongside the steps so callers can record it.
type Result struct {
	Prompt     string
	Completion string
	Steps      []string
}

// ExtractSteps asks the model for the manual's troubleshooting steps matching the issue.
// Transport failures are returned as is; an empty completion yields no steps.
func (s *StepExtractService) ExtractSteps(issueDescription string, manualText string) (Result, error) {
	prompt, err := troubleshoot.BuildPrompt(troubleshoot.PromptParam{
		IssueDescription: issueDescription,
		ManualText:       manualText,
	})
	if err != nil {
		return Result{}, eris.Wrap(err, "failed to build prompt")
	}

	answer, err := s.client.SendMessage(troubleshoot.BuildMessages(prompt, manualText), s.maxTokens)
	if err != nil {
		return Result{}, eris.Wrap(err, "failed to send message to LLM")
	}

	return Result{
		Prompt:     prompt,
		Completion: answer.Content,
		Steps:      FilterSteps(answer.Content, issueDescription),
	}, nil
}

// FilterSteps drops header lines the model echoes, lines restating the issue,
// and blank lines. Surviving lines are trimmed and keep their order.
// An empty issue description disables the restatement check.
func FilterSteps(completion string, issueDescription string) []string {
	issue := strings.ToLower(issueDescription)

	steps := []string{}
	for _, line := range strings.Split(completion, "\n") {
		lowered := strings.ToLower(line)
		if strings.Contains(lowered, headerPhrase) {
			continue
		}
		if issue != "" && strings.Contains(lowered, issue) {
			continue
		}
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		steps = append(steps, trimmed)
	}

	return steps
}
