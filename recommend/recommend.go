// Package recommend matches a free-text request against the design catalog
// using Gemini. Without an API key it falls back to the first designs in
// catalog order so results stay reproducible.
package recommend

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/junaidrashid-git/stitchlink-api/models"
	"google.golang.org/api/option"
)

// MaxResults caps how many design ids a lookup returns.
const MaxResults = 3

// Recommender is what the catalog handlers depend on.
type Recommender interface {
	Recommend(ctx context.Context, query string, designs []models.Design) []string
}

type generator interface {
	GenerateContent(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error)
}

type Service struct {
	client *genai.Client
	model  generator
}

// New builds a Service. An empty apiKey gives a Service that only ever
// returns the catalog fallback.
func New(ctx context.Context, apiKey, modelName string) (*Service, error) {
	if apiKey == "" {
		log.Println("⚠️ Gemini API key missing, recommendations will use the catalog fallback")
		return &Service{}, nil
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	model := client.GenerativeModel(modelName)
	model.ResponseMIMEType = "application/json"
	model.ResponseSchema = &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"recommendedIds": {
				Type:  genai.TypeArray,
				Items: &genai.Schema{Type: genai.TypeString},
			},
		},
	}

	return &Service{client: client, model: model}, nil
}

func (s *Service) Close() error {
	if s.client == nil {
		return nil
	}
	return s.client.Close()
}

// Recommend returns up to MaxResults design ids for query. Lookup failures
// are logged and produce an empty list; they are never returned.
func (s *Service) Recommend(ctx context.Context, query string, designs []models.Design) []string {
	if s.model == nil {
		return Fallback(designs)
	}

	prompt, err := buildPrompt(query, designs)
	if err != nil {
		log.Printf("❌ Failed to build recommendation prompt: %v", err)
		return []string{}
	}

	resp, err := s.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		log.Printf("❌ Error getting recommendations: %v", err)
		return []string{}
	}

	ids, err := parseResponse(resp)
	if err != nil {
		log.Printf("❌ Error reading recommendations: %v", err)
		return []string{}
	}
	if len(ids) > MaxResults {
		ids = ids[:MaxResults]
	}
	return ids
}

// Fallback returns the ids of the first MaxResults designs, in order.
func Fallback(designs []models.Design) []string {
	ids := []string{}
	for _, d := range designs {
		if len(ids) == MaxResults {
			break
		}
		ids = append(ids, d.ID)
	}
	return ids
}

type catalogEntry struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Tags        string `json:"tags"`
	Category    string `json:"category"`
}

func buildPrompt(query string, designs []models.Design) (string, error) {
	entries := make([]catalogEntry, 0, len(designs))
	for _, d := range designs {
		entries = append(entries, catalogEntry{
			ID:          d.ID,
			Title:       d.Title,
			Description: d.Description,
			Tags:        strings.Join(d.Tags, ", "),
			Category:    d.Category,
		})
	}
	catalog, err := json.Marshal(entries)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf(`You are an intelligent assistant for an embroidery shop called 'StitchLink'.

The user is looking for a design.
User Query: %q

Here is our catalog of designs:
%s

Analyze the user's request and match it to the most relevant designs from the catalog.
Consider the style, tags, description, and category.

Return the result as a JSON object containing an array of 'recommendedIds'.
Select up to %d best matches.`, query, catalog, MaxResults), nil
}

var errNoCandidates = errors.New("response has no candidates")

func parseResponse(resp *genai.GenerateContentResponse) ([]string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, errNoCandidates
	}

	var text strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if t, ok := part.(genai.Text); ok {
			text.WriteString(string(t))
		}
	}

	var result struct {
		RecommendedIDs []string `json:"recommendedIds"`
	}
	if err := json.Unmarshal([]byte(text.String()), &result); err != nil {
		return nil, fmt.Errorf("decode recommendations: %w", err)
	}
	if result.RecommendedIDs == nil {
		return []string{}, nil
	}
	return result.RecommendedIDs, nil
}
