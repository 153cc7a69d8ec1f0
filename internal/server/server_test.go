package server

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-screener/internal/db"
	"github.com/jonathan/resume-screener/internal/email"
	"github.com/jonathan/resume-screener/internal/screening"
)

// fakeStore implements Store with overridable behavior per test.
type fakeStore struct {
	pingErr error

	savedCandidates []db.Candidate
	saveErr         error

	candidates []db.Candidate
	total      int
	listErr    error

	updateFound bool
	updateErr   error
	deleteFound bool
	deleteErr   error

	outreachCandidates []db.Candidate
	outreachErr        error
	emailSentIDs       []uuid.UUID
	markErr            error

	jobRoles []db.JobRole
	rolesErr error

	stats    *db.Statistics
	statsErr error

	requirements []db.JobRequirement
	defaultReq   *db.JobRequirement
	getReq       *db.JobRequirement
	reqFound     bool
}

func (f *fakeStore) Ping(context.Context) error { return f.pingErr }

func (f *fakeStore) SaveCandidate(_ context.Context, c *db.Candidate) (uuid.UUID, error) {
	if f.saveErr != nil {
		return uuid.Nil, f.saveErr
	}
	f.savedCandidates = append(f.savedCandidates, *c)
	return uuid.New(), nil
}

func (f *fakeStore) ListCandidates(context.Context, db.CandidateFilter) ([]db.Candidate, int, error) {
	return f.candidates, f.total, f.listErr
}

func (f *fakeStore) UpdateCandidate(context.Context, uuid.UUID, db.CandidateUpdate) (bool, error) {
	return f.updateFound, f.updateErr
}

func (f *fakeStore) DeleteCandidate(context.Context, uuid.UUID) (bool, error) {
	return f.deleteFound, f.deleteErr
}

func (f *fakeStore) TopCandidatesForOutreach(context.Context, float64, int) ([]db.Candidate, error) {
	return f.outreachCandidates, f.outreachErr
}

func (f *fakeStore) MarkEmailSent(_ context.Context, id uuid.UUID) error {
	if f.markErr != nil {
		return f.markErr
	}
	f.emailSentIDs = append(f.emailSentIDs, id)
	return nil
}

func (f *fakeStore) CandidateJobRoles(context.Context) ([]db.JobRole, error) {
	return f.jobRoles, f.rolesErr
}

func (f *fakeStore) GetStatistics(context.Context) (*db.Statistics, error) {
	return f.stats, f.statsErr
}

func (f *fakeStore) CreateJobRequirement(_ context.Context, req *db.JobRequirement) (*db.JobRequirement, error) {
	created := *req
	created.ID = uuid.New()
	f.requirements = append(f.requirements, created)
	return &created, nil
}

func (f *fakeStore) GetJobRequirement(context.Context, uuid.UUID) (*db.JobRequirement, error) {
	return f.getReq, nil
}

func (f *fakeStore) ListJobRequirements(context.Context) ([]db.JobRequirement, error) {
	return f.requirements, nil
}

func (f *fakeStore) UpdateJobRequirement(context.Context, uuid.UUID, *db.JobRequirement) (bool, error) {
	return f.reqFound, nil
}

func (f *fakeStore) DeleteJobRequirement(context.Context, uuid.UUID) (bool, error) {
	return f.reqFound, nil
}

func (f *fakeStore) EnsureDefaultJobRequirement(context.Context) (*db.JobRequirement, error) {
	return f.defaultReq, nil
}

// fakeSender records invitations and can fail selected addresses.
type fakeSender struct {
	sent    []email.Invitation
	failFor map[string]bool
}

func (f *fakeSender) SendInvitation(inv email.Invitation) error {
	if f.failFor[inv.To] {
		return errors.New("smtp failure")
	}
	f.sent = append(f.sent, inv)
	return nil
}

func newTestServer(store *fakeStore, sender Sender) *Server {
	return New(Config{Port: 0, CompanyName: "Acme Corp"}, store, screening.New(nil), sender, nil)
}

// buildDocx assembles a minimal docx archive with one paragraph per line.
func buildDocx(t *testing.T, lines []string) []byte {
	t.Helper()

	var body bytes.Buffer
	body.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`)
	for _, line := range lines {
		fmt.Fprintf(&body, `<w:p><w:r><w:t>%s</w:t></w:r></w:p>`, line)
	}
	body.WriteString(`</w:body></w:document>`)

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	doc, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := doc.Write(body.Bytes()); err != nil {
		t.Fatal(err)
	}
	rels, err := zw.Create("word/_rels/document.xml.rels")
	if err != nil {
		t.Fatal(err)
	}
	relsBody := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"></Relationships>`
	if _, err := rels.Write([]byte(relsBody)); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestHandleHealth(t *testing.T) {
	t.Run("healthy", func(t *testing.T) {
		s := newTestServer(&fakeStore{}, nil)
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		w := httptest.NewRecorder()

		s.handleHealth(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"ok"`)
	})

	t.Run("database down", func(t *testing.T) {
		s := newTestServer(&fakeStore{pingErr: errors.New("dial refused")}, nil)
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		w := httptest.NewRecorder()

		s.handleHealth(w, req)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Contains(t, w.Body.String(), "unhealthy")
	})
}

func TestRoutes(t *testing.T) {
	s := newTestServer(&fakeStore{}, nil)
	srv := httptest.NewServer(s.routes())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/health")
	assert.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
