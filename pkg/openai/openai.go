// Package openai sends the assembled prompt to a chat completion endpoint
// and streams the diagnosis back to the user.
package openai

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const apiKeyEnvVar = "OPENAI_API_KEY"

// Input are the chat completion parameters for one request.
type Input struct {
	Model        string
	MaxTokens    int64
	SystemPrompt string
	UserPrompt   string
}

// ResolveApiKey applies the credential precedence rule: the OPENAI_API_KEY
// environment variable wins over the configured key. Missing both is fatal.
func ResolveApiKey(configuredKey string) (string, error) {
	if envKey, exists := os.LookupEnv(apiKeyEnvVar); exists && envKey != "" {
		return envKey, nil
	}
	if configuredKey != "" {
		return configuredKey, nil
	}
	return "", fmt.Errorf("%s environment variable or open_ai.api_key must be set", apiKeyEnvVar)
}

// SendRequest opens a streaming chat completion and echoes each chunk to out
// as it arrives, returning the accumulated text. Stream errors are appended
// to the output inline rather than returned.
func SendRequest(ctx context.Context, apiKey string, input Input, out io.Writer) (string, error) {
	client := openai.NewClient(option.WithAPIKey(apiKey))

	stream := client.Chat.Completions.NewStreaming(ctx, openai.ChatCompletionNewParams{
		Model:     openai.ChatModel(input.Model),
		MaxTokens: openai.Int(input.MaxTokens),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(input.SystemPrompt),
			openai.UserMessage(input.UserPrompt),
		},
	})
	defer stream.Close() //nolint:errcheck

	var sb strings.Builder
	for stream.Next() {
		chunk := stream.Current()
		for _, choice := range chunk.Choices {
			if choice.Delta.Content == "" {
				continue
			}
			fmt.Fprint(out, choice.Delta.Content)
			sb.WriteString(choice.Delta.Content)
		}
	}

	if err := stream.Err(); err != nil {
		errText := fmt.Sprintf("error: %v\n", err)
		fmt.Fprint(out, errText)
		sb.WriteString(errText)
	}
	fmt.Fprintln(out)

	return sb.String(), nil
}
