package itinerary

import (
	"strings"
	"sync"

	"google.golang.org/genai"
)

var (
	schemaOnce sync.Once
	schema     *genai.Schema
)

func str() *genai.Schema { return &genai.Schema{Type: genai.TypeString} }
func num() *genai.Schema { return &genai.Schema{Type: genai.TypeNumber} }
func boolean() *genai.Schema { return &genai.Schema{Type: genai.TypeBoolean} }

func arrayOf(items *genai.Schema) *genai.Schema {
	return &genai.Schema{Type: genai.TypeArray, Items: items}
}

func object(props map[string]*genai.Schema, required ...string) *genai.Schema {
	return &genai.Schema{Type: genai.TypeObject, Properties: props, Required: required}
}

func flight(required ...string) *genai.Schema {
	return object(map[string]*genai.Schema{
		"airline":       str(),
		"flightNumber":  str(),
		"departureTime": str(),
		"arrivalTime":   str(),
		"duration":      str(),
		"price":         num(),
		"layovers":      str(),
	}, required...)
}

// Schema returns the response schema sent with every generation request.
// The returned value is shared and must not be modified.
func Schema() *genai.Schema {
	schemaOnce.Do(func() {
		activity := object(map[string]*genai.Schema{
			"time":        str(),
			"title":       str(),
			"description": str(),
			"location":    str(),
			"cost":        num(),
			"isTip":       boolean(),
		}, "time", "title", "description")

		day := object(map[string]*genai.Schema{
			"day":        {Type: genai.TypeInteger},
			"date":       str(),
			"title":      str(),
			"activities": arrayOf(activity),
		}, "day", "activities")

		schema = object(map[string]*genai.Schema{
			"tripTitle":      str(),
			"destination":    str(),
			"dates":          str(),
			"outboundFlight": flight("airline", "price", "departureTime", "arrivalTime"),
			"returnFlight":   flight("airline", "price"),
			"hotel": object(map[string]*genai.Schema{
				"name":          str(),
				"location":      str(),
				"rating":        num(),
				"pricePerNight": num(),
				"features":      arrayOf(str()),
				"description":   str(),
			}, "name", "pricePerNight", "location"),
			"days": arrayOf(day),
			"diningRecommendations": arrayOf(object(map[string]*genai.Schema{
				"name":       str(),
				"type":       str(),
				"cuisine":    str(),
				"priceLevel": str(),
				"reason":     str(),
			})),
			"travelTips": arrayOf(str()),
			"budgetCategories": arrayOf(object(map[string]*genai.Schema{
				"name":   str(),
				"amount": num(),
				"color":  str(),
			})),
			"totalEstimate": num(),
		}, "tripTitle", "outboundFlight", "hotel", "days", "totalEstimate")
	})
	return schema
}

// JSONSchema returns Schema in the lower-case JSON Schema dialect used by
// OpenAI-compatible structured output.
func JSONSchema() map[string]any {
	return toJSONSchema(Schema())
}

func toJSONSchema(s *genai.Schema) map[string]any {
	out := map[string]any{"type": strings.ToLower(string(s.Type))}
	if len(s.Properties) > 0 {
		props := make(map[string]any, len(s.Properties))
		for name, p := range s.Properties {
			props[name] = toJSONSchema(p)
		}
		out["properties"] = props
	}
	if len(s.Required) > 0 {
		out["required"] = append([]string(nil), s.Required...)
	}
	if s.Items != nil {
		out["items"] = toJSONSchema(s.Items)
	}
	return out
}
