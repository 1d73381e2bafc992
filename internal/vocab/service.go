package vocab

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/abhisek/vocabdrill/internal/api"
)

// ErrEmptyDate is returned when a word set is requested without a date.
var ErrEmptyDate = errors.New("date is required")

// Loader fetches the word set for a practice date.
type Loader interface {
	LoadWords(ctx context.Context, date string) ([]Word, error)
}

// Service is the vocabulary backend client. It implements Loader and the
// word management operations used by the words command.
type Service struct {
	client *api.Client
}

// NewService creates a Service on top of an API client.
func NewService(client *api.Client) *Service {
	return &Service{client: client}
}

func wordsEndpoint(date string) string {
	return "vocabulary/" + url.PathEscape(date) + "/words"
}

func wordEndpoint(id string) string {
	return "vocabulary/words/" + url.PathEscape(id)
}

// LoadWords returns the words for date in backend order. A date with no
// words (404) yields an empty, non-nil list.
func (s *Service) LoadWords(ctx context.Context, date string) ([]Word, error) {
	if strings.TrimSpace(date) == "" {
		return nil, ErrEmptyDate
	}

	var words []Word
	err := s.client.Do(ctx, http.MethodGet, wordsEndpoint(date), nil, WordListSchema, &words)
	if err != nil {
		if api.IsNotFound(err) {
			return []Word{}, nil
		}
		return nil, fmt.Errorf("fetch words for %s: %w", date, err)
	}
	return normalize(words), nil
}

// CreateWords adds words to date and returns them as stored.
func (s *Service) CreateWords(ctx context.Context, date string, inputs []WordInput) ([]Word, error) {
	if strings.TrimSpace(date) == "" {
		return nil, ErrEmptyDate
	}
	if len(inputs) == 0 {
		return nil, errors.New("no words to create")
	}
	for _, in := range inputs {
		if err := in.Validate(); err != nil {
			return nil, err
		}
	}

	body := struct {
		Words []WordInput `json:"words"`
	}{Words: inputs}

	var words []Word
	if err := s.client.Do(ctx, http.MethodPost, wordsEndpoint(date), body, WordListSchema, &words); err != nil {
		return nil, fmt.Errorf("create words for %s: %w", date, err)
	}
	return normalize(words), nil
}

// UpdateWord applies the non-empty fields of in to the word with id.
func (s *Service) UpdateWord(ctx context.Context, id string, in WordInput) (Word, error) {
	if strings.TrimSpace(id) == "" {
		return Word{}, errors.New("word id is required")
	}

	var w Word
	if err := s.client.Do(ctx, http.MethodPut, wordEndpoint(id), in, WordSchema, &w); err != nil {
		return Word{}, fmt.Errorf("update word %s: %w", id, err)
	}
	if w.Synonyms == nil {
		w.Synonyms = Synonyms{}
	}
	return w, nil
}

// DeleteWord removes the word with id.
func (s *Service) DeleteWord(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return errors.New("word id is required")
	}
	if err := s.client.Do(ctx, http.MethodDelete, wordEndpoint(id), nil, nil, nil); err != nil {
		return fmt.Errorf("delete word %s: %w", id, err)
	}
	return nil
}
