package llm

import "strings"

// ModelCost holds per-million-token pricing in USD.
type ModelCost struct {
	InputPerMTok  float64
	OutputPerMTok float64
}

// Cost returns the estimated USD cost for the given token counts.
func (c ModelCost) Cost(inputTokens, outputTokens int) float64 {
	return float64(inputTokens)/1e6*c.InputPerMTok +
		float64(outputTokens)/1e6*c.OutputPerMTok
}

// modelCosts covers the models this app names in its friendly-name maps.
// Prefix matching tolerates dated model ID suffixes.
var modelCosts = map[string]ModelCost{
	"claude-sonnet-4":  {InputPerMTok: 3.00, OutputPerMTok: 15.00},
	"claude-haiku-4-5": {InputPerMTok: 1.00, OutputPerMTok: 5.00},
	"gpt-4o-mini":      {InputPerMTok: 0.15, OutputPerMTok: 0.60},
	"gpt-4o":           {InputPerMTok: 2.50, OutputPerMTok: 10.00},
	"gemini-2.0-flash": {InputPerMTok: 0.10, OutputPerMTok: 0.40},
	"gemini-2.0-pro":   {InputPerMTok: 1.25, OutputPerMTok: 5.00},
}

// LookupCost returns pricing for a model ID, or nil if unknown.
// Longest matching prefix wins, so "gpt-4o-mini" is not priced as "gpt-4o".
func LookupCost(model string) *ModelCost {
	var best string
	for prefix := range modelCosts {
		if strings.HasPrefix(model, prefix) && len(prefix) > len(best) {
			best = prefix
		}
	}
	if best == "" {
		return nil
	}
	cost := modelCosts[best]
	return &cost
}
