package vocab

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/vocabdrill/internal/api"
)

const wordsBody = `{
  "success": true,
  "data": [
    {"id":"w1","word":"run","meaning":"달리다","partOfSpeech":"verb","synonyms":["jog"],"example":"I run daily.","date":"2025-03-07","createdAt":"2025-03-07T10:00:00Z","updatedAt":"2025-03-07T10:00:00Z"},
    {"id":"w2","word":"cat","meaning":"고양이","partOfSpeech":null,"synonyms":"kitty","example":null,"date":"2025-03-07"},
    {"id":"w3","word":"apple","meaning":"사과","date":"2025-03-07"}
  ],
  "error": null
}`

func newService(t *testing.T, h http.HandlerFunc) *Service {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewService(api.NewClient(srv.URL, "/api/v1"))
}

func TestLoadWords(t *testing.T) {
	var path string
	svc := newService(t, func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		_, _ = io.WriteString(w, wordsBody)
	})

	words, err := svc.LoadWords(context.Background(), "2025-03-07")
	require.NoError(t, err)

	assert.Equal(t, "/api/v1/vocabulary/2025-03-07/words", path)
	require.Len(t, words, 3)
	assert.Equal(t, []string{"w1", "w2", "w3"}, []string{words[0].ID, words[1].ID, words[2].ID})
	assert.Equal(t, Synonyms{"jog"}, words[0].Synonyms)
	assert.Equal(t, Synonyms{"kitty"}, words[1].Synonyms)
	assert.Equal(t, Synonyms{}, words[2].Synonyms)
	assert.Equal(t, "", words[1].PartOfSpeech)
	assert.Equal(t, 2025, words[0].CreatedAt.Year())
}

func TestLoadWords_Idempotent(t *testing.T) {
	svc := newService(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, wordsBody)
	})

	first, err := svc.LoadWords(context.Background(), "2025-03-07")
	require.NoError(t, err)
	second, err := svc.LoadWords(context.Background(), "2025-03-07")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestLoadWords_NotFoundIsEmpty(t *testing.T) {
	svc := newService(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, `{"success":false,"data":null,"error":{"statusCode":404,"message":"No words found"}}`)
	})

	words, err := svc.LoadWords(context.Background(), "2025-03-07")
	require.NoError(t, err)
	assert.NotNil(t, words)
	assert.Empty(t, words)
}

func TestLoadWords_ServerError(t *testing.T) {
	svc := newService(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = io.WriteString(w, `{"success":false,"data":null,"error":{"statusCode":500,"message":"boom"}}`)
	})

	words, err := svc.LoadWords(context.Background(), "2025-03-07")
	require.Error(t, err)
	assert.Nil(t, words)
	assert.Contains(t, err.Error(), "boom")
}

func TestLoadWords_MalformedWord(t *testing.T) {
	svc := newService(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"success":true,"data":[{"id":"w1","word":"run"}]}`)
	})

	_, err := svc.LoadWords(context.Background(), "2025-03-07")
	var invalid *api.ErrInvalidResponse
	assert.ErrorAs(t, err, &invalid)
}

func TestLoadWords_EmptyDate(t *testing.T) {
	var calls atomic.Int32
	svc := newService(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	})

	_, err := svc.LoadWords(context.Background(), "  ")
	assert.ErrorIs(t, err, ErrEmptyDate)
	assert.Zero(t, calls.Load())
}

func TestCreateWords(t *testing.T) {
	var body struct {
		Words []WordInput `json:"words"`
	}
	svc := newService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/vocabulary/2025-03-07/words", r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		_, _ = io.WriteString(w, `{"success":true,"data":[{"id":"n1","word":"pear","meaning":"배","synonyms":"","date":"2025-03-07"}]}`)
	})

	words, err := svc.CreateWords(context.Background(), "2025-03-07", []WordInput{{Word: "pear", Meaning: "배"}})
	require.NoError(t, err)
	require.Len(t, body.Words, 1)
	assert.Equal(t, "pear", body.Words[0].Word)
	require.Len(t, words, 1)
	assert.Equal(t, "n1", words[0].ID)
}

func TestCreateWords_RejectsInvalidInput(t *testing.T) {
	svc := newService(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected")
	})

	_, err := svc.CreateWords(context.Background(), "2025-03-07", []WordInput{{Word: "pear"}})
	assert.Error(t, err)
	_, err = svc.CreateWords(context.Background(), "2025-03-07", nil)
	assert.Error(t, err)
}

func TestUpdateWord(t *testing.T) {
	svc := newService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/v1/vocabulary/words/w1", r.URL.Path)
		_, _ = io.WriteString(w, `{"success":true,"data":{"id":"w1","word":"run","meaning":"뛰다","date":"2025-03-07"}}`)
	})

	w, err := svc.UpdateWord(context.Background(), "w1", WordInput{Meaning: "뛰다"})
	require.NoError(t, err)
	assert.Equal(t, "뛰다", w.Meaning)
	assert.NotNil(t, w.Synonyms)
}

func TestDeleteWord(t *testing.T) {
	var method string
	svc := newService(t, func(w http.ResponseWriter, r *http.Request) {
		method = r.Method
		_, _ = io.WriteString(w, `{"success":true,"data":null}`)
	})

	require.NoError(t, svc.DeleteWord(context.Background(), "w1"))
	assert.Equal(t, http.MethodDelete, method)
}
