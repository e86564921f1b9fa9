package openai

import (
	"context"
	"fmt"
	"strings"
)

// GenerateSuggestions asks the model for short title/caption ideas and
// returns one suggestion per non-blank line of the completion.
func (c *Client) GenerateSuggestions(ctx context.Context, topic, platform, pageContext string) ([]string, error) {
	prompt := fmt.Sprintf("Suggest 5 catchy %s content titles/captions for the topic: %q. Be short, creative, and platform-appropriate.", platform, topic)
	if pageContext != "" {
		prompt += fmt.Sprintf("\n\nUse this reference material for extra context:\n%s", pageContext)
	}

	content, err := c.Chat(ctx, ChatRequest{
		Messages: []map[string]string{
			{"role": "user", "content": prompt},
		},
	})
	if err != nil {
		return nil, err
	}

	return SplitSuggestions(content), nil
}

// SplitSuggestions breaks a completion into individual suggestions on line
// boundaries, discarding blank lines.
func SplitSuggestions(content string) []string {
	lines := strings.Split(content, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		out = append(out, line)
	}
	return out
}
