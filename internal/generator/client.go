package generator

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/anthropics/anthropic-sdk-go/packages/param"
)

// LLMClient is the interface both generator implementations satisfy.
type LLMClient interface {
	Generate(ctx context.Context, systemPrompt string, userPrompt string, opts GenerateOptions) (*LLMResponse, error)
}

// GenerateOptions bounds a single generation call.
type GenerateOptions struct {
	MaxTokens   int64
	Temperature float64
}

// LLMResponse holds the raw response content and token usage.
type LLMResponse struct {
	Content      string
	PromptTokens int
	OutputTokens int
}

// requestTimeout bounds every generative call. A timed-out or failed call is
// not retried; the caller falls through to text-grounded synthesis instead.
const requestTimeout = 30 * time.Second

// Generator wraps an LLMClient and adds study-companion batch methods.
type Generator struct {
	llm   LLMClient
	model string
}

func NewGenerator() *Generator {
	var llm LLMClient
	model := "mock"

	if os.Getenv("MOCK_GENERATOR") == "true" {
		llm = NewMockClient()
		log.Println("Generator using mock data")
	} else {
		model = os.Getenv("ANTHROPIC_MODEL")
		if model == "" {
			model = "claude-3-5-haiku-20241022"
		}
		llm = NewAPIClient(model)
		log.Println("Generator using Anthropic API:", model)
	}

	return &Generator{llm: llm, model: model}
}

// NewGeneratorWithClient builds a Generator around an explicit client.
func NewGeneratorWithClient(llm LLMClient, model string) *Generator {
	return &Generator{llm: llm, model: model}
}

func (g *Generator) ModelName() string {
	return g.model
}

// GenerateExamQuestions asks the model for count questions grounded
// exclusively in the supplied study text and returns the raw response body.
// Parsing is the caller's concern; any failure here routes the caller to
// the text-grounded fallback.
func (g *Generator) GenerateExamQuestions(ctx context.Context, text string, count int) (string, error) {
	resp, err := g.llm.Generate(ctx, ExamSystemPrompt(), BuildExamPrompt(text, count), GenerateOptions{
		MaxTokens:   1500,
		Temperature: 0.3,
	})
	if err != nil {
		return "", fmt.Errorf("generate exam questions: %w", err)
	}
	return resp.Content, nil
}

// GenerateSummary produces a study summary of the supplied material.
func (g *Generator) GenerateSummary(ctx context.Context, topic, text string) (string, error) {
	resp, err := g.llm.Generate(ctx, SummarySystemPrompt(), BuildSummaryPrompt(topic, text), GenerateOptions{
		MaxTokens:   1000,
		Temperature: 0.5,
	})
	if err != nil {
		return "", fmt.Errorf("generate summary: %w", err)
	}
	return resp.Content, nil
}

// GenerateStudyAdvice produces learning suggestions for the supplied material.
func (g *Generator) GenerateStudyAdvice(ctx context.Context, text string) (string, error) {
	resp, err := g.llm.Generate(ctx, AdvisorSystemPrompt(), BuildSuggestPrompt(text), GenerateOptions{
		MaxTokens:   1000,
		Temperature: 0.5,
	})
	if err != nil {
		return "", fmt.Errorf("generate study advice: %w", err)
	}
	return resp.Content, nil
}

// ── APIClient — Anthropic SDK (Production) ─────────────────

type APIClient struct {
	client *anthropic.Client
	model  string
}

func NewAPIClient(model string) *APIClient {
	client := anthropic.NewClient(
		option.WithAPIKey(os.Getenv("ANTHROPIC_API_KEY")),
	)
	return &APIClient{client: &client, model: model}
}

func (c *APIClient) Generate(ctx context.Context, systemPrompt string, userPrompt string, opts GenerateOptions) (*LLMResponse, error) {
	if opts.MaxTokens <= 0 {
		opts.MaxTokens = 1000
	}

	// One attempt per call. Timeouts and transport errors are treated the
	// same as a non-success status: the caller falls back.
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	params := anthropic.MessageNewParams{
		Model:       anthropic.Model(c.model),
		MaxTokens:   opts.MaxTokens,
		Temperature: param.NewOpt(opts.Temperature),
		System: []anthropic.TextBlockParam{
			{Text: systemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(userPrompt)),
		},
	}

	message, err := c.client.Messages.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("anthropic request failed: %w", err)
	}

	var responseText string
	for _, block := range message.Content {
		if block.Type == "text" {
			responseText = block.Text
			break
		}
	}

	if responseText == "" {
		return nil, fmt.Errorf("no text content in API response")
	}

	return &LLMResponse{
		Content:      responseText,
		PromptTokens: int(message.Usage.InputTokens),
		OutputTokens: int(message.Usage.OutputTokens),
	}, nil
}

// ── MockClient — Local Development ─────────────────────────

type MockClient struct{}

func NewMockClient() *MockClient {
	return &MockClient{}
}

func (m *MockClient) Generate(ctx context.Context, systemPrompt string, userPrompt string, opts GenerateOptions) (*LLMResponse, error) {
	return &LLMResponse{
		Content:      buildMockQuizText(),
		PromptTokens: 500,
		OutputTokens: 400,
	}, nil
}

func buildMockQuizText() string {
	return `Question 1: [Mock] What does the supplied material primarily discuss?
A) The main topic covered by the study material
B) An unrelated subject
C) General trivia
D) Nothing in particular
Correct: A
Explain: [Mock] The material is focused on its main topic.

Question 2: [Mock] Which statement is supported by the material?
A) A claim taken directly from the text
B) A claim contradicting the text
C) A claim absent from the text
D) A vague generalization
Correct: A
Explain: [Mock] Only the first option restates the text.

Question 3: [Mock] What should a reader take away from the material?
A) Its key point
B) An unstated assumption
C) A counterargument
D) An anecdote
Correct: A
Explain: [Mock] The key point is stated explicitly.
`
}
