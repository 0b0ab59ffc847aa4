package titlegen

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

const (
	DefaultModel    = "gemini-2.5-flash"
	DefaultEndpoint = "https://generativelanguage.googleapis.com/v1beta"
)

// Gemini calls the generateContent REST method and expects a JSON object
// with title and description keys back.
type Gemini struct {
	apiKey   string
	model    string
	endpoint string
	client   *http.Client
}

func NewGemini(apiKey, model string, client *http.Client) *Gemini {
	if model == "" {
		model = DefaultModel
	}
	if client == nil {
		client = &http.Client{}
	}
	return &Gemini{apiKey: apiKey, model: model, endpoint: DefaultEndpoint, client: client}
}

// WithEndpoint points the client at another base URL.
func (g *Gemini) WithEndpoint(endpoint string) *Gemini {
	g.endpoint = endpoint
	return g
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	Contents         []geminiContent `json:"contents"`
	GenerationConfig struct {
		ResponseMimeType string `json:"responseMimeType"`
	} `json:"generationConfig"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

func prompt(gameName string) string {
	return fmt.Sprintf(`Generate a cool, short, and exciting tournament title and a one-sentence description for a %q competition. `+
		`Format the output as a JSON object with keys "title" and "description". `+
		`For example: {"title": "Valorant Vanguard Series", "description": "Clash in a high-stakes 5v5 battle for glory and prizes."}`, gameName)
}

func (g *Gemini) Generate(ctx context.Context, gameName string) (Suggestion, error) {
	var reqBody geminiRequest
	reqBody.Contents = []geminiContent{{Parts: []geminiPart{{Text: prompt(gameName)}}}}
	reqBody.GenerationConfig.ResponseMimeType = "application/json"
	raw, err := json.Marshal(reqBody)
	if err != nil {
		return Suggestion{}, err
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent", g.endpoint, url.PathEscape(g.model))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(raw))
	if err != nil {
		return Suggestion{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", g.apiKey)

	resp, err := g.client.Do(req)
	if err != nil {
		return Suggestion{}, err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return Suggestion{}, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Suggestion{}, fmt.Errorf("gemini returned status %d", resp.StatusCode)
	}

	var out geminiResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return Suggestion{}, fmt.Errorf("decode gemini response: %w", err)
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return Suggestion{}, errors.New("empty response from gemini")
	}
	var s Suggestion
	if err := json.Unmarshal([]byte(out.Candidates[0].Content.Parts[0].Text), &s); err != nil {
		return Suggestion{}, fmt.Errorf("decode suggestion: %w", err)
	}
	return s, nil
}
