// Package receipt turns a photographed receipt into structured line items
// using Gemini. It is a best-effort suggestion engine: on any failure the
// result is simply empty, the caller cannot and should not distinguish "no
// items found" from "extraction failed".
package receipt

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
	"google.golang.org/genai"

	khata "github.com/25F1002767MONUSAHU/KiranaKhata"
)

const model = "gemini-2.5-flash"

const instruction = `Extract all line items from this receipt image.
For each item return its name and its price as a number.
If a price is not legible, estimate a reasonable price for the item.
Return only the items, nothing else.`

// Item is one name/price guess extracted from a receipt.
type Item struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// Extractor extracts line items from receipt images.
type Extractor struct {
	client *genai.Client
}

// NewExtractor creates an extractor on top of a Gemini client. The client
// reads its API key from the environment (GEMINI_API_KEY).
func NewExtractor(ctx context.Context) (*Extractor, error) {
	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("could not initialize Gemini client: %w", err)
	}
	return &Extractor{client: client}, nil
}

// schema constrains the model output to a JSON array of {name, price}.
func schema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeArray,
		Items: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"name": {
					Type:        genai.TypeString,
					Description: "The item name as printed on the receipt.",
				},
				"price": {
					Type:        genai.TypeNumber,
					Description: "The item price, estimated if not legible.",
				},
			},
			Required: []string{"name", "price"},
		},
	}
}

// Extract sends JPEG-encoded image bytes to the model and returns the
// guessed line items. It returns an empty list on any internal failure
// (network error, blocked response, malformed output); the failure is
// logged, never propagated. No retry, no streaming.
func (e *Extractor) Extract(ctx context.Context, jpeg []byte) []Item {
	content := genai.NewContentFromParts([]*genai.Part{
		{InlineData: &genai.Blob{MIMEType: "image/jpeg", Data: jpeg}},
		{Text: instruction},
	}, genai.RoleUser)

	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   schema(),
	}

	resp, err := e.client.Models.GenerateContent(ctx, model, []*genai.Content{content}, config)
	if err != nil {
		log.Printf("receipt extraction failed: %v", err)
		return nil
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		log.Printf("receipt extraction returned no candidates")
		return nil
	}
	return parseItems(resp.Candidates[0].Content.Parts[0].Text)
}

// parseItems decodes the model text into items. It first tries the strict
// schema shape; when that fails for off-schema but well-formed JSON (e.g.
// items wrapped in an envelope object) it salvages names and prices with a
// jsonpath pass before giving up.
func parseItems(text string) []Item {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	var items []Item
	if err := json.Unmarshal([]byte(text), &items); err == nil {
		return sanitize(items)
	}

	var jobj any
	if err := json.Unmarshal([]byte(text), &jobj); err != nil {
		log.Printf("receipt extraction output is not JSON: %v", err)
		return nil
	}
	names, err := jsonpath.Get("$..name", jobj)
	if err != nil {
		log.Printf("receipt extraction output has no item names: %v", err)
		return nil
	}
	prices, err := jsonpath.Get("$..price", jobj)
	if err != nil {
		log.Printf("receipt extraction output has no item prices: %v", err)
		return nil
	}
	jnames, ok1 := names.([]any)
	jprices, ok2 := prices.([]any)
	if !ok1 || !ok2 || len(jnames) != len(jprices) {
		log.Printf("receipt extraction output does not pair names with prices")
		return nil
	}
	for i := range jnames {
		name, ok := jnames[i].(string)
		if !ok {
			continue
		}
		price, ok := jprices[i].(float64)
		if !ok {
			continue
		}
		items = append(items, Item{Name: name, Price: decimal.NewFromFloat(price)})
	}
	return sanitize(items)
}

// sanitize drops items that violate the contract: empty names or negative
// prices.
func sanitize(items []Item) []Item {
	var kept []Item
	for _, it := range items {
		if strings.TrimSpace(it.Name) == "" || it.Price.IsNegative() {
			continue
		}
		kept = append(kept, it)
	}
	return kept
}

// Suggestion sums the item prices into a suggested transaction amount and
// joins the names into a suggested description. The user must confirm before
// anything is recorded; this is suggestion-only, never an auto-commit.
func Suggestion(items []Item) (amount khata.Money, description string) {
	total := decimal.Zero
	names := make([]string, 0, len(items))
	for _, it := range items {
		total = total.Add(it.Price)
		names = append(names, it.Name)
	}
	return khata.Rupees(total), strings.Join(names, ", ")
}
