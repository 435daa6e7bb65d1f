package coach

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/mdivincenzo/macrocoach/internal/config"
	"github.com/mdivincenzo/macrocoach/internal/service"
)

const maxToolRounds = 8

// Client drives one coaching conversation turn against the Anthropic
// Messages API. It is the only network-facing piece of the coach layer;
// everything it feeds the model is computed locally first.
type Client struct {
	anthropic *anthropic.Client
	model     anthropic.Model
	maxTokens int64
}

func NewClient(cfg config.Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	client := anthropic.NewClient(option.WithAPIKey(cfg.APIKey))
	return &Client{
		anthropic: &client,
		model:     anthropic.Model(cfg.Model),
		maxTokens: int64(cfg.MaxTokens),
	}, nil
}

// Chat sends one user message through the coaching loop: assemble the
// context bundle, render the system prompt, replay recent history, then
// let the model call logging tools until it settles on a text reply. The
// transcript is persisted to chat_history.
func (c *Client) Chat(ctx context.Context, db *sql.DB, profileID int64, sessionID, userMessage string) (string, error) {
	userMessage = strings.TrimSpace(userMessage)
	if userMessage == "" {
		return "", fmt.Errorf("message is required")
	}

	bundle, err := BuildContext(db, profileID, time.Now())
	if err != nil {
		return "", err
	}
	system := RenderSystemPrompt(bundle)

	messages, err := historyMessages(db, profileID)
	if err != nil {
		return "", err
	}
	messages = append(messages, anthropic.NewUserMessage(anthropic.NewTextBlock(userMessage)))

	var reply strings.Builder
	for round := 0; ; round++ {
		if round >= maxToolRounds {
			return "", fmt.Errorf("coach exceeded %d tool rounds without finishing", maxToolRounds)
		}

		msg, err := c.anthropic.Messages.New(ctx, anthropic.MessageNewParams{
			Model:     c.model,
			MaxTokens: c.maxTokens,
			System:    []anthropic.TextBlockParam{{Text: system}},
			Messages:  messages,
			Tools:     coachTools(),
		})
		if err != nil {
			return "", fmt.Errorf("anthropic message: %w", err)
		}

		assistantBlocks := make([]anthropic.ContentBlockParamUnion, 0, len(msg.Content))
		toolResults := make([]anthropic.ContentBlockParamUnion, 0)
		for _, block := range msg.Content {
			switch b := block.AsAny().(type) {
			case anthropic.TextBlock:
				if b.Text != "" {
					if reply.Len() > 0 {
						reply.WriteString("\n")
					}
					reply.WriteString(b.Text)
					assistantBlocks = append(assistantBlocks, anthropic.NewTextBlock(b.Text))
				}
			case anthropic.ToolUseBlock:
				assistantBlocks = append(assistantBlocks, anthropic.ContentBlockParamUnion{
					OfToolUse: &anthropic.ToolUseBlockParam{
						ID:    b.ID,
						Name:  b.Name,
						Input: b.Input,
					},
				})
				args, _ := b.Input.MarshalJSON()
				result, isError := dispatchTool(db, profileID, b.Name, args)
				toolResults = append(toolResults, anthropic.NewToolResultBlock(b.ID, result, isError))
			}
		}

		if msg.StopReason != anthropic.StopReasonToolUse || len(toolResults) == 0 {
			break
		}
		messages = append(messages, anthropic.NewAssistantMessage(assistantBlocks...))
		messages = append(messages, anthropic.NewUserMessage(toolResults...))
	}

	final := strings.TrimSpace(reply.String())
	if final == "" {
		final = "Logged. Anything else?"
	}
	if err := service.AppendChatMessage(db, profileID, sessionID, "user", userMessage); err != nil {
		return "", err
	}
	if err := service.AppendChatMessage(db, profileID, sessionID, "assistant", final); err != nil {
		return "", err
	}
	return final, nil
}

func historyMessages(db *sql.DB, profileID int64) ([]anthropic.MessageParam, error) {
	history, err := service.RecentChatMessages(db, profileID, 20)
	if err != nil {
		return nil, err
	}
	messages := make([]anthropic.MessageParam, 0, len(history)+1)
	for _, m := range history {
		switch m.Role {
		case "user":
			messages = append(messages, anthropic.NewUserMessage(anthropic.NewTextBlock(m.Content)))
		case "assistant":
			messages = append(messages, anthropic.NewAssistantMessage(anthropic.NewTextBlock(m.Content)))
		}
	}
	return messages, nil
}
