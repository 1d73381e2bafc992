package vocab

import "github.com/abhisek/vocabdrill/internal/api"

var wordProperties = map[string]any{
	"id":           map[string]any{"type": "string"},
	"word":         map[string]any{"type": "string"},
	"meaning":      map[string]any{"type": "string"},
	"partOfSpeech": map[string]any{"type": []any{"string", "null"}},
	"synonyms": map[string]any{
		"anyOf": []any{
			map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
			map[string]any{"type": "string"},
			map[string]any{"type": "null"},
		},
	},
	"example": map[string]any{"type": []any{"string", "null"}},
	"date":    map[string]any{"type": "string"},
}

var wordItem = map[string]any{
	"type":       "object",
	"required":   []any{"id", "word", "meaning"},
	"properties": wordProperties,
}

// WordListSchema validates the data of a word list response.
var WordListSchema = &api.Schema{
	Name: "word_list",
	Definition: map[string]any{
		"type":  "array",
		"items": wordItem,
	},
}

// WordSchema validates the data of a single word response.
var WordSchema = &api.Schema{
	Name:       "word",
	Definition: wordItem,
}
