package llm

import (
	"context"
	"strings"

	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"
	"github.com/openai/openai-go/v2/responses"
	"github.com/openai/openai-go/v2/shared"

	"github.com/dlnilsson/gitmsg/pkg/config"
)

// Completer produces one candidate string for the current conversation.
// The generation loop depends on this interface so tests can stub it.
type Completer interface {
	Complete(ctx context.Context, conv *Conversation) (string, error)
}

// Client is the OpenAI-compatible transport.
type Client struct {
	api   openai.Client
	model string
}

// NewClient builds a client from the environment configuration.
func NewClient(env *config.Env) *Client {
	opts := []option.RequestOption{option.WithAPIKey(env.APIKey)}
	if env.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(env.BaseURL))
	}
	return &Client{
		api:   openai.NewClient(opts...),
		model: env.Model,
	}
}

// Complete tries the responses endpoint first; any error or empty output
// there falls through to chat completions without being treated as fatal.
// The result is empty when both paths yield nothing; only a chat transport
// error is surfaced.
func (c *Client) Complete(ctx context.Context, conv *Conversation) (string, error) {
	if out := c.completeResponses(ctx, conv); out != "" {
		return out, nil
	}
	return c.completeChat(ctx, conv)
}

// completeResponses swallows its transport error on purpose: an endpoint
// that does not exist and a transient failure both just mean "no candidate
// from this path".
func (c *Client) completeResponses(ctx context.Context, conv *Conversation) string {
	resp, err := c.api.Responses.New(ctx, responses.ResponseNewParams{
		Model:        shared.ResponsesModel(c.model),
		Instructions: openai.String(conv.Instructions()),
		Input: responses.ResponseNewParamsInputUnion{
			OfString: openai.String(conv.Transcript()),
		},
	})
	if err != nil || resp == nil {
		return ""
	}
	return strings.TrimSpace(resp.OutputText())
}

func (c *Client) completeChat(ctx context.Context, conv *Conversation) (string, error) {
	msgs := make([]openai.ChatCompletionMessageParamUnion, 0, conv.Len())
	for _, m := range conv.Messages() {
		switch m.Role {
		case RoleSystem:
			msgs = append(msgs, openai.SystemMessage(m.Content))
		case RoleAssistant:
			msgs = append(msgs, openai.AssistantMessage(m.Content))
		default:
			msgs = append(msgs, openai.UserMessage(m.Content))
		}
	}
	resp, err := c.api.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:    shared.ChatModel(c.model),
		Messages: msgs,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
