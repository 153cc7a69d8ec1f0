package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-screener/internal/db"
	"github.com/jonathan/resume-screener/internal/types"
)

func TestHandleOutreach(t *testing.T) {
	t.Run("sends invitations and marks candidates", func(t *testing.T) {
		a, b := uuid.New(), uuid.New()
		store := &fakeStore{
			outreachCandidates: []db.Candidate{
				{ID: a, Name: "Jane Doe", Email: "jane.doe@example.com", Score: 0.9},
				{ID: b, Name: "John Smith", Email: "john.smith@example.com", Score: 0.8},
			},
		}
		sender := &fakeSender{}
		s := newTestServer(store, sender)

		req := httptest.NewRequest(http.MethodPost, "/outreach",
			strings.NewReader(`{"num_candidates":5,"min_score":0.7,"email_settings":{"include_score":true}}`))
		w := httptest.NewRecorder()
		s.handleOutreach(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp OutreachResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, 2, resp.SentCount)
		assert.Equal(t, 0, resp.FailedCount)
		assert.Empty(t, resp.FailedEmails)

		require.Len(t, sender.sent, 2)
		assert.Equal(t, "jane.doe@example.com", sender.sent[0].To)
		assert.True(t, sender.sent[0].IncludeScore)
		assert.Equal(t, 0.9, sender.sent[0].Score)
		// company name falls back to the server config
		assert.Equal(t, "Acme Corp", sender.sent[0].CompanyName)

		assert.ElementsMatch(t, []uuid.UUID{a, b}, store.emailSentIDs)
	})

	t.Run("skips placeholder addresses without sending", func(t *testing.T) {
		store := &fakeStore{
			outreachCandidates: []db.Candidate{
				{ID: uuid.New(), Name: "Unknown Candidate", Email: types.DefaultEmail, Score: 0.9},
			},
		}
		sender := &fakeSender{}
		s := newTestServer(store, sender)

		req := httptest.NewRequest(http.MethodPost, "/outreach", strings.NewReader(`{}`))
		w := httptest.NewRecorder()
		s.handleOutreach(w, req)

		var resp OutreachResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, 0, resp.SentCount)
		assert.Equal(t, 1, resp.FailedCount)
		assert.Empty(t, sender.sent)
		assert.Empty(t, store.emailSentIDs)
	})

	t.Run("reports at most five failed addresses", func(t *testing.T) {
		var candidates []db.Candidate
		failFor := map[string]bool{}
		for i := 0; i < 7; i++ {
			addr := string(rune('a'+i)) + "@example.com"
			candidates = append(candidates, db.Candidate{ID: uuid.New(), Email: addr, Score: 0.9})
			failFor[addr] = true
		}
		store := &fakeStore{outreachCandidates: candidates}
		s := newTestServer(store, &fakeSender{failFor: failFor})

		req := httptest.NewRequest(http.MethodPost, "/outreach", strings.NewReader(`{}`))
		w := httptest.NewRecorder()
		s.handleOutreach(w, req)

		var resp OutreachResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, 7, resp.FailedCount)
		assert.Len(t, resp.FailedEmails, 5)
	})

	t.Run("defaults applied to empty body", func(t *testing.T) {
		store := &fakeStore{}
		s := newTestServer(store, &fakeSender{})

		req := httptest.NewRequest(http.MethodPost, "/outreach", nil)
		w := httptest.NewRecorder()
		s.handleOutreach(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("rejects invalid parameters", func(t *testing.T) {
		s := newTestServer(&fakeStore{}, &fakeSender{})

		for _, body := range []string{
			`{"num_candidates":0}`,
			`{"num_candidates":3,"min_score":1.5}`,
			`{"num_candidates":3,"min_score":-0.1}`,
		} {
			req := httptest.NewRequest(http.MethodPost, "/outreach", strings.NewReader(body))
			w := httptest.NewRecorder()
			s.handleOutreach(w, req)
			assert.Equal(t, http.StatusBadRequest, w.Code, body)
		}
	})

	t.Run("mailer not configured", func(t *testing.T) {
		s := newTestServer(&fakeStore{}, nil)

		req := httptest.NewRequest(http.MethodPost, "/outreach", strings.NewReader(`{}`))
		w := httptest.NewRecorder()
		s.handleOutreach(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Email not configured")
	})
}
