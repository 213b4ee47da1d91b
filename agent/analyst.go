package agent

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

const analystModel = "gemini-2.5-pro"

const analystInstruction = `You are the analyst of a multi-contributor investment pool.
Several people fund purchase batches together; the reports below are the
current state of the pool: per-investment valuation, per-contributor
allocation and batch breakdowns, all amounts in TWD.

Answer questions about the pool using only these reports. When a figure is
not in the reports, say so instead of estimating. Keep answers short and in
markdown.`

// Analyst is the chat with the pool expert. Its context is seeded with the
// rendered reports of the ledger under analysis.
type Analyst struct {
	Config *genai.GenerateContentConfig
	chat   *genai.Chat
}

// NewAnalyst creates an analyst grounded on the given markdown reports.
func NewAnalyst(reports ...string) *Analyst {
	instruction := analystInstruction + "\n\n---\n\n" + strings.Join(reports, "\n\n---\n\n")
	return &Analyst{
		Config: &genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{
				Parts: []*genai.Part{{Text: instruction}},
			},
		},
	}
}

// Start opens the chat session.
func (a *Analyst) Start(ctx context.Context, client *genai.Client) error {
	chat, err := client.Chats.Create(ctx, analystModel, a.Config, nil)
	if err != nil {
		return err
	}
	a.chat = chat
	return nil
}

// Ask sends one message and returns the analyst's content.
func (a *Analyst) Ask(ctx context.Context, parts ...*genai.Part) (*genai.Content, error) {
	resp, err := a.chat.Send(ctx, parts...)
	if err != nil {
		return nil, err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("no response from the analyst")
	}
	return resp.Candidates[0].Content, nil
}
