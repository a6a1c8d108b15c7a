package itinerary

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"google.golang.org/genai"
)

// ErrEmpty is returned by Decode when the response has no content.
var ErrEmpty = errors.New("empty response")

// ShapeError reports where a document departs from Schema.
type ShapeError struct {
	Path   string
	Reason string
}

func (e *ShapeError) Error() string {
	if e.Path == "" {
		return "response does not match itinerary schema: " + e.Reason
	}
	return fmt.Sprintf("response does not match itinerary schema at %s: %s", e.Path, e.Reason)
}

// Decode parses a generation response into an Itinerary. The text must be a
// single JSON document that satisfies Schema; there is no partial recovery.
func Decode(text string) (*Itinerary, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmpty
	}

	// Numbers stay as literals so "2.0" is not mistaken for an integer.
	dec := json.NewDecoder(strings.NewReader(text))
	dec.UseNumber()
	var generic any
	if err := dec.Decode(&generic); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	if dec.More() {
		return nil, errors.New("invalid JSON: trailing data after document")
	}
	if err := conform(generic, Schema(), ""); err != nil {
		return nil, err
	}

	var it Itinerary
	if err := json.Unmarshal([]byte(text), &it); err != nil {
		return nil, fmt.Errorf("decode itinerary: %w", err)
	}
	return &it, nil
}

func conform(v any, s *genai.Schema, path string) error {
	switch s.Type {
	case genai.TypeObject:
		obj, ok := v.(map[string]any)
		if !ok {
			return &ShapeError{Path: path, Reason: "expected object"}
		}
		for _, name := range s.Required {
			if val, present := obj[name]; !present || val == nil {
				return &ShapeError{Path: join(path, name), Reason: "required field missing"}
			}
		}
		for name, val := range obj {
			prop, known := s.Properties[name]
			if !known || val == nil {
				continue
			}
			if err := conform(val, prop, join(path, name)); err != nil {
				return err
			}
		}
	case genai.TypeArray:
		arr, ok := v.([]any)
		if !ok {
			return &ShapeError{Path: path, Reason: "expected array"}
		}
		if s.Items == nil {
			return nil
		}
		for i, el := range arr {
			if err := conform(el, s.Items, fmt.Sprintf("%s[%d]", path, i)); err != nil {
				return err
			}
		}
	case genai.TypeString:
		if _, ok := v.(string); !ok {
			return &ShapeError{Path: path, Reason: "expected string"}
		}
	case genai.TypeNumber:
		if _, ok := v.(json.Number); !ok {
			return &ShapeError{Path: path, Reason: "expected number"}
		}
	case genai.TypeInteger:
		n, ok := v.(json.Number)
		if !ok {
			return &ShapeError{Path: path, Reason: "expected integer"}
		}
		if _, err := strconv.ParseInt(n.String(), 10, 0); err != nil {
			return &ShapeError{Path: path, Reason: "expected integer literal"}
		}
	case genai.TypeBoolean:
		if _, ok := v.(bool); !ok {
			return &ShapeError{Path: path, Reason: "expected boolean"}
		}
	}
	return nil
}

func join(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}
