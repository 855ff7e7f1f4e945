package azureOpenAi

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/rotisserie/eris"
	domainAzureOpenAi "github.com/t-kuni/aspa/domain/external/azureOpenAi"
	"github.com/t-kuni/aspa/domain/repository/config"
)

type AzureOpenAIClient struct {
	httpClient *resty.Client
	url        string
}

type apiRequest struct {
	Messages  []apiMessageItem `json:"messages"`
	MaxTokens int              `json:"max_tokens"`
}

type apiMessageItem struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type apiResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
}

type ClientFactory struct{}

func NewClientFactory() *ClientFactory {
	return &ClientFactory{}
}

func (f *ClientFactory) NewClient(cfg config.LLM) (domainAzureOpenAi.Client, error) {
	client, err := NewAzureOpenAIClient(cfg)
	if err != nil {
		return nil, err
	}
	return client, nil
}

func NewAzureOpenAIClient(cfg config.LLM) (*AzureOpenAIClient, error) {
	if cfg.Endpoint == "" {
		return nil, eris.New("Azure OpenAI endpoint is not set (AZURE_OPENAI_ENDPOINT)")
	}
	if cfg.APIKey == "" {
		return nil, eris.New("Azure OpenAI APIキーが設定されていません (AZURE_OPENAI_API_KEY)")
	}

	client := resty.New()
	client.SetHeader("Content-Type", "application/json")
	client.SetHeader("api-key", cfg.APIKey)

	return &AzureOpenAIClient{
		httpClient: client,
		url:        completionsURL(cfg),
	}, nil
}

func completionsURL(cfg config.LLM) string {
	return fmt.Sprintf("%s/openai/deployments/%s/chat/completions?api-version=%s",
		strings.TrimRight(cfg.Endpoint, "/"),
		url.PathEscape(cfg.Deployment),
		url.QueryEscape(cfg.APIVersion))
}

func (c *AzureOpenAIClient) SendMessage(messages []domainAzureOpenAi.Message, maxTokens int) (domainAzureOpenAi.GenerationResult, error) {
	apiMessages := make([]apiMessageItem, len(messages))
	for i, msg := range messages {
		apiMessages[i] = apiMessageItem{
			Role:    msg.Role,
			Content: msg.Content,
		}
	}

	reqBody := apiRequest{
		Messages:  apiMessages,
		MaxTokens: maxTokens,
	}

	var aiResponse apiResponse
	resp, err := c.httpClient.R().
		SetBody(reqBody).
		SetResult(&aiResponse).
		Post(c.url)
	if err != nil {
		return domainAzureOpenAi.GenerationResult{}, eris.Wrap(err, "failed to send request")
	}

	if resp.StatusCode() != 200 {
		return domainAzureOpenAi.GenerationResult{}, eris.Errorf("API request failed with status code %d and response: %s", resp.StatusCode(), resp.String())
	}

	if len(aiResponse.Choices) == 0 {
		return domainAzureOpenAi.GenerationResult{}, eris.New("API response contains no choices")
	}

	return domainAzureOpenAi.GenerationResult{
		Content:           aiResponse.Choices[0].Message.Content,
		TerminationReason: aiResponse.Choices[0].FinishReason,
	}, nil
}
