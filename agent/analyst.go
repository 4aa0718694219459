package agent

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

const analystInstruction = `You are a market analyst assisting a user of the
FinTrade terminal client. The conversation starts with documents fetched
from the FinTrade analysis service: treat them as the data on screen and
ground your answers in them. Be concise. Always remind the user that
nothing you say is investment advice when they ask what to buy or sell.`

// Analyst is the single expert of the assist session, seeded with the
// documents the client fetched before the session started.
type Analyst struct {
	ModelName string
	Config    *genai.GenerateContentConfig
	seeds     []string
	chat      *genai.Chat
}

// NewAnalyst creates an analyst seeded with the given context documents
// (typically the service disclaimer and the analyses of the symbols named
// on the command line).
func NewAnalyst(seeds ...string) *Analyst {
	return &Analyst{
		ModelName: "gemini-2.5-flash",
		Config: &genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(analystInstruction, genai.RoleUser),
		},
		seeds: seeds,
	}
}

// Start creates the chat session, with the seed documents as prior turns.
func (e *Analyst) Start(ctx context.Context, client *genai.Client) error {
	var history []*genai.Content
	for _, doc := range e.seeds {
		history = append(history, genai.NewContentFromText(doc, genai.RoleUser))
	}
	chat, err := client.Chats.Create(ctx, e.ModelName, e.Config, history)
	if err != nil {
		return err
	}
	e.chat = chat
	return nil
}

// Ask sends one question and returns the analyst's text answer.
func (e *Analyst) Ask(ctx context.Context, question string) (string, error) {
	resp, err := e.chat.Send(ctx, &genai.Part{Text: question})
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response from the analyst")
	}
	return resp.Candidates[0].Content.Parts[0].Text, nil
}
