package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/patelajay005/Saathi/pkg/config"
)

// SystemPrompt frames every coaching conversation.
const SystemPrompt = `You are a compassionate and knowledgeable AI wellness coach. Your role is to:
- Provide emotional support and encouragement
- Offer evidence-based mental health advice and coping strategies
- Suggest specific CBT techniques, mindfulness exercises, and breathing techniques
- Help users build healthy habits with practical steps
- Provide personalized recommendations based on their mood and progress
- Be empathetic, non-judgmental, and supportive
- Use emojis appropriately to make conversations warm and engaging
- Ask follow-up questions to understand their situation better
- Give actionable advice they can use immediately

IMPORTANT: You ARE able to help and support users. Engage actively with their concerns.
- For low mood: Suggest activities, exercises, or perspective shifts
- For stress/anxiety: Offer breathing exercises, grounding techniques
- For motivation: Provide encouragement and break down goals into small steps

Only if a user expresses thoughts of self-harm or severe crisis, then encourage professional help.
Otherwise, provide helpful, practical wellness coaching.

Keep responses warm, supportive, and actionable (2-4 paragraphs). Focus on practical advice and positive reinforcement.`

// Message is a single entry in a chat completion request.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Response is the distilled result of a completion call.
type Response struct {
	Content string
	Tokens  int
	Model   string
}

// Client talks to an OpenAI-compatible chat completion API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	model      string
	log        *logrus.Logger
}

func NewClient(cfg *config.AIConfig, log *logrus.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
		log:        log,
	}
}

type completionRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float64   `json:"temperature"`
	MaxTokens   int       `json:"max_tokens"`
}

type completionResponse struct {
	Model   string `json:"model"`
	Choices []struct {
		Message Message `json:"message"`
	} `json:"choices"`
	Usage struct {
		TotalTokens int `json:"total_tokens"`
	} `json:"usage"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// GenerateResponse runs one chat completion over the given messages.
// The caller supplies the full message list including the system prompt.
func (c *Client) GenerateResponse(ctx context.Context, messages []Message) (*Response, error) {
	body, err := json.Marshal(completionRequest{
		Model:       c.model,
		Messages:    messages,
		Temperature: 0.7,
		MaxTokens:   500,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode completion request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build completion request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	c.log.WithFields(logrus.Fields{
		"model":    c.model,
		"messages": len(messages),
	}).Debug("sending chat completion request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("completion request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("failed to read completion response: %w", err)
	}

	var parsed completionResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("failed to decode completion response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		if parsed.Error != nil {
			return nil, fmt.Errorf("completion API error (%d): %s", resp.StatusCode, parsed.Error.Message)
		}
		return nil, fmt.Errorf("completion API returned status %d", resp.StatusCode)
	}
	if len(parsed.Choices) == 0 {
		return nil, fmt.Errorf("completion API returned no choices")
	}

	return &Response{
		Content: parsed.Choices[0].Message.Content,
		Tokens:  parsed.Usage.TotalTokens,
		Model:   parsed.Model,
	}, nil
}
