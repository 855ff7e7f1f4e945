package troubleshoot

import (
	_ "embed"
	"strings"
	"text/template"

	"github.com/t-kuni/aspa/domain/external/azureOpenAi"
)

//go:embed prompt.md.tmpl
var promptTmpl string

type PromptParam struct {
	IssueDescription string
	ManualText       string
}

func BuildPrompt(param PromptParam) (string, error) {
	tmpl, err := template.New("markdown").Parse(promptTmpl)
	if err != nil {
		return "", err
	}

	var output strings.Builder
	err = tmpl.Execute(&output, param)
	if err != nil {
		return "", err
	}

	return output.String(), nil
}

// BuildMessages pairs the instruction (system role) with the manual text (user role).
func BuildMessages(instruction string, manualText string) []azureOpenAi.Message {
	return []azureOpenAi.Message{
		azureOpenAi.NewMessage(azureOpenAi.RoleSystem, "Follow these: "+instruction),
		azureOpenAi.NewMessage(azureOpenAi.RoleUser, "Use this data: "+manualText),
	}
}
