package handlers

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"benchboard/pkg/consultant"
	"benchboard/pkg/resume"
)

// stubConsultants implements the handful of consultant.UseCase methods the
// handler tests exercise; everything else panics via the embedded nil.
type stubConsultants struct {
	consultant.UseCase
	byID    map[uuid.UUID]consultant.Consultant
	byEmail map[string]consultant.Consultant
}

func newStubConsultants(cs ...consultant.Consultant) *stubConsultants {
	s := &stubConsultants{
		byID:    map[uuid.UUID]consultant.Consultant{},
		byEmail: map[string]consultant.Consultant{},
	}
	for _, c := range cs {
		s.byID[c.ID] = c
		s.byEmail[c.Email] = c
	}
	return s
}

func (s *stubConsultants) Get(_ context.Context, id uuid.UUID) (consultant.Consultant, error) {
	c, ok := s.byID[id]
	if !ok {
		return consultant.Consultant{}, consultant.ErrNotFound
	}
	return c, nil
}

func (s *stubConsultants) GetByEmail(_ context.Context, email string) (consultant.Consultant, error) {
	c, ok := s.byEmail[email]
	if !ok {
		return consultant.Consultant{}, consultant.ErrNotFound
	}
	return c, nil
}

func (s *stubConsultants) MarkResumeUpdated(_ context.Context, id uuid.UUID) (consultant.Consultant, error) {
	c, ok := s.byID[id]
	if !ok {
		return consultant.Consultant{}, consultant.ErrNotFound
	}
	now := time.Now().UTC()
	c.ResumeStatus = consultant.ResumeUpdated
	c.ResumeUploadedAt = &now
	s.byID[id] = c
	return c, nil
}

func (s *stubConsultants) MarkAttendance(_ context.Context, id uuid.UUID, hours float64) (consultant.Consultant, error) {
	c, ok := s.byID[id]
	if !ok {
		return consultant.Consultant{}, consultant.ErrNotFound
	}
	c.Attendance = consultant.AttendanceCompleted
	c.AttendanceHours += hours
	s.byID[id] = c
	return c, nil
}

// stubResumes records writes and can be told to fail Create.
type stubResumes struct {
	resume.Repository
	createErr error
	docs      []resume.Document
	parsed    []resume.Parsed
}

func (s *stubResumes) Create(_ context.Context, d resume.Document) error {
	if s.createErr != nil {
		return s.createErr
	}
	s.docs = append(s.docs, d)
	return nil
}

func (s *stubResumes) SaveParsed(_ context.Context, p resume.Parsed) error {
	s.parsed = append(s.parsed, p)
	return nil
}

func buildDocx(t *testing.T, documentXML string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(documentXML))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func submitRequest(t *testing.T, url string, data []byte, fields map[string]string) *http.Request {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile("file", "resume.docx")
	require.NoError(t, err)
	_, err = fw.Write(data)
	require.NoError(t, err)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, url, &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func newSubmitApp(h *ResumeHandler) *fiber.App {
	app := fiber.New()
	app.Post("/consultants/:id/resume", h.Submit)
	return app
}

func dirEntries(t *testing.T, dir string) []os.DirEntry {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil
	}
	require.NoError(t, err)
	return entries
}

func TestSubmitUnknownConsultant(t *testing.T) {
	uploads := t.TempDir()
	repo := &stubResumes{}
	h := NewResumeHandler(newStubConsultants(), repo, uploads)
	app := newSubmitApp(h)

	docx := buildDocx(t, `<w:document><w:body><w:p><w:r><w:t>Go developer</w:t></w:r></w:p></w:body></w:document>`)
	req := submitRequest(t, "/consultants/"+uuid.NewString()+"/resume", docx, map[string]string{"keywords": "go"})

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	// Nothing touched disk or the repository.
	assert.Empty(t, dirEntries(t, uploads))
	assert.Empty(t, repo.docs)
	assert.Empty(t, repo.parsed)
}

func TestSubmitRemovesFileWhenStoreFails(t *testing.T) {
	uploads := t.TempDir()
	me := consultant.Consultant{ID: uuid.New(), Name: "Dev", Email: "dev@corp.test"}
	repo := &stubResumes{createErr: errors.New("insert failed")}
	h := NewResumeHandler(newStubConsultants(me), repo, uploads)
	app := newSubmitApp(h)

	docx := buildDocx(t, `<w:document><w:body><w:p><w:r><w:t>Go developer</w:t></w:r></w:p></w:body></w:document>`)
	req := submitRequest(t, "/consultants/"+me.ID.String()+"/resume", docx, map[string]string{"keywords": "go"})

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	// The already written upload must not stay behind.
	assert.Empty(t, dirEntries(t, uploads))
}

func TestSubmitStoresAndMarksResume(t *testing.T) {
	uploads := t.TempDir()
	me := consultant.Consultant{ID: uuid.New(), Name: "Dev", Email: "dev@corp.test"}
	consultants := newStubConsultants(me)
	repo := &stubResumes{}
	h := NewResumeHandler(consultants, repo, uploads)
	app := newSubmitApp(h)

	docx := buildDocx(t, `<w:document><w:body><w:p><w:r><w:t>Go developer with Docker experience</w:t></w:r></w:p></w:body></w:document>`)
	req := submitRequest(t, "/consultants/"+me.ID.String()+"/resume", docx, map[string]string{"keywords": "go,docker,kubernetes"})

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out struct {
		Match struct {
			FoundKeywords     []string `json:"foundKeywords"`
			MissingKeywords   []string `json:"missingKeywords"`
			MatchScorePercent int      `json:"matchScorePercent"`
		} `json:"match"`
		Consultant struct {
			ResumeStatus string `json:"resumeStatus"`
		} `json:"consultant"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.ElementsMatch(t, []string{"go", "docker"}, out.Match.FoundKeywords)
	assert.Equal(t, []string{"kubernetes"}, out.Match.MissingKeywords)
	assert.Equal(t, 67, out.Match.MatchScorePercent)
	assert.Equal(t, string(consultant.ResumeUpdated), out.Consultant.ResumeStatus)

	require.Len(t, repo.docs, 1)
	require.Len(t, repo.parsed, 1)
	assert.Equal(t, me.ID, repo.docs[0].ConsultantID)
	assert.Contains(t, repo.parsed[0].Text, "Docker")
	assert.Len(t, dirEntries(t, uploads), 1)
}
