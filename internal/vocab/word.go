package vocab

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Blank replaces the target word in example sentences used as hints.
const Blank = "______"

// Word is a single vocabulary entry scoped to a practice date.
type Word struct {
	ID           string    `json:"id"`
	Word         string    `json:"word"`
	Meaning      string    `json:"meaning"`
	PartOfSpeech string    `json:"partOfSpeech,omitempty"`
	Synonyms     Synonyms  `json:"synonyms"`
	Example      string    `json:"example,omitempty"`
	Date         string    `json:"date"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Senses splits the meaning on commas into trimmed, non-empty senses.
func (w Word) Senses() []string {
	parts := strings.Split(w.Meaning, ",")
	senses := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			senses = append(senses, p)
		}
	}
	return senses
}

// ExampleWithBlank returns the example sentence with every case-insensitive
// occurrence of the word replaced by Blank. It returns "" when there is no
// example or the example does not contain the word.
func (w Word) ExampleWithBlank() string {
	target := strings.TrimSpace(w.Word)
	if w.Example == "" || target == "" {
		return ""
	}
	lowerEx := strings.ToLower(w.Example)
	lowerTarget := strings.ToLower(target)
	if !strings.Contains(lowerEx, lowerTarget) {
		return ""
	}

	var b strings.Builder
	i := 0
	for {
		j := strings.Index(lowerEx[i:], lowerTarget)
		if j < 0 {
			b.WriteString(w.Example[i:])
			break
		}
		b.WriteString(w.Example[i : i+j])
		b.WriteString(Blank)
		i += j + len(lowerTarget)
	}
	return b.String()
}

// Synonyms is the canonical list form of a word's synonyms. The backend
// sends either a list, a single string, or nothing; all three decode here.
type Synonyms []string

// UnmarshalJSON accepts an array of strings, a single string or null.
func (s *Synonyms) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0 || bytes.Equal(data, []byte("null")):
		*s = Synonyms{}
		return nil
	case data[0] == '"':
		var one string
		if err := json.Unmarshal(data, &one); err != nil {
			return err
		}
		if one == "" {
			*s = Synonyms{}
		} else {
			*s = Synonyms{one}
		}
		return nil
	case data[0] == '[':
		var many []string
		if err := json.Unmarshal(data, &many); err != nil {
			return err
		}
		if many == nil {
			many = []string{}
		}
		*s = many
		return nil
	default:
		return fmt.Errorf("synonyms: unsupported JSON value %s", data)
	}
}

// String joins the synonyms for display.
func (s Synonyms) String() string {
	return strings.Join(s, ", ")
}

// normalize makes sure decoded words never carry a nil synonyms slice,
// which happens when the field is absent from the payload.
func normalize(words []Word) []Word {
	if words == nil {
		return []Word{}
	}
	for i := range words {
		if words[i].Synonyms == nil {
			words[i].Synonyms = Synonyms{}
		}
	}
	return words
}

// WordInput is the payload for creating or updating a word. Synonyms are
// sent comma-separated, the way the backend stores them.
type WordInput struct {
	Word         string `json:"word,omitempty"`
	Meaning      string `json:"meaning,omitempty"`
	PartOfSpeech string `json:"partOfSpeech,omitempty"`
	Synonyms     string `json:"synonyms,omitempty"`
	Example      string `json:"example,omitempty"`
}

// Validate checks that the fields required to create a word are present.
func (in WordInput) Validate() error {
	if strings.TrimSpace(in.Word) == "" {
		return fmt.Errorf("word is required")
	}
	if strings.TrimSpace(in.Meaning) == "" {
		return fmt.Errorf("meaning for %q is required", in.Word)
	}
	return nil
}
