package handlers

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"benchboard/api/http/presenter"
	"benchboard/pkg/consultant"
	"benchboard/pkg/extract"
	"benchboard/pkg/match"
	"benchboard/pkg/resume"
)

type ResumeHandler struct {
	consultants consultant.UseCase
	resumes     resume.Repository
	// Limit uploaded file size read into memory (bytes)
	maxBytes int64
	baseDir  string
}

func NewResumeHandler(consultants consultant.UseCase, resumes resume.Repository, baseDir string) *ResumeHandler {
	return &ResumeHandler{consultants: consultants, resumes: resumes, maxBytes: 15 << 20, baseDir: baseDir} // 15MB
}

// Submit accepts a resume upload (PDF/DOCX) for one consultant, extracts the
// text, stores file and text, marks the resume milestone and returns the
// match result against the supplied keywords or query.
// @Summary Submit resume and match skills
// @Description Accepts a PDF or DOCX resume plus a keyword list or free-text query; returns found/missing keywords and the match score.
// @Tags    resumes
// @Accept  multipart/form-data
// @Produce json
// @Param   id path string true "consultant id (UUID)"
// @Param   file formData file true "resume file (PDF or DOCX)"
// @Param   keywords formData string false "comma-separated keyword list"
// @Param   query formData string false "free-text capability query"
// @Security BearerAuth
// @Success 200 {object} map[string]any
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Failure 422 {object} presenter.ErrorResponse "document could not be parsed"
// @Router  /consultants/{id}/resume [post]
func (h *ResumeHandler) Submit(c *fiber.Ctx) error {
	consultantID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid id")
	}
	// Resolve the consultant before touching disk or the resume tables.
	if _, err := h.consultants.Get(c.Context(), consultantID); err != nil {
		return consultantError(c, err)
	}
	fh, err := c.FormFile("file")
	if err != nil || fh == nil {
		return presenter.Error(c, http.StatusBadRequest, "file is required (pdf or docx)")
	}
	file, err := fh.Open()
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "failed to open uploaded file")
	}
	defer file.Close()

	data, err := readAtMost(file, h.maxBytes)
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, err.Error())
	}

	text, err := extract.Text(fh.Filename, fh.Header.Get("Content-Type"), data)
	switch {
	case errors.Is(err, extract.ErrUnsupportedFormat):
		return presenter.Error(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, extract.ErrCorruptDocument):
		return presenter.Error(c, http.StatusUnprocessableEntity, err.Error())
	case err != nil:
		return presenter.Error(c, http.StatusInternalServerError, "failed to extract text")
	}
	if strings.TrimSpace(text) == "" {
		return presenter.Error(c, http.StatusUnprocessableEntity, "no text could be extracted from the document")
	}

	keywords := match.Keywords(splitCSV(c.FormValue("keywords")))
	if len(keywords) == 0 {
		keywords = match.ParseQuery(c.FormValue("query"))
	}
	result := match.Match(text, keywords)

	if err := os.MkdirAll(h.baseDir, 0o755); err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to prepare storage")
	}
	docID := uuid.New()
	dst := filepath.Join(h.baseDir, docID.String()+strings.ToLower(filepath.Ext(fh.Filename)))
	if err := os.WriteFile(dst, data, 0o644); err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to store file")
	}
	doc := resume.Document{
		ID:           docID,
		ConsultantID: consultantID,
		Filename:     fh.Filename,
		MimeType:     fh.Header.Get("Content-Type"),
		Size:         fh.Size,
		StorageURI:   dst,
	}
	if err := h.resumes.Create(c.Context(), doc); err != nil {
		_ = os.Remove(dst)
		return presenter.Error(c, http.StatusInternalServerError, "failed to save metadata")
	}
	if err := h.resumes.SaveParsed(c.Context(), resume.Parsed{DocumentID: docID, Text: text}); err != nil {
		_ = os.Remove(dst)
		return presenter.Error(c, http.StatusInternalServerError, "failed to save parsed text")
	}

	updated, err := h.consultants.MarkResumeUpdated(c.Context(), consultantID)
	if err != nil {
		// Consultant vanished mid-request; the rows cascade away with it,
		// the file has to go explicitly.
		_ = os.Remove(dst)
		return consultantError(c, err)
	}

	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"resumeId":   docID.String(),
		"filename":   fh.Filename,
		"sizeB":      len(data),
		"match":      result,
		"consultant": view(updated),
	})
}

// History lists a consultant's uploaded resumes, newest first.
// @Summary Resume upload history
// @Tags    resumes
// @Produce json
// @Param   id path string true "consultant id (UUID)"
// @Security BearerAuth
// @Success 200 {array} resume.Document
// @Router  /consultants/{id}/resume [get]
func (h *ResumeHandler) History(c *fiber.Ctx) error {
	consultantID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid id")
	}
	limit, offset := parseLimitOffset(c, 50)
	items, err := h.resumes.ListByConsultant(c.Context(), consultantID, limit, offset)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to list resumes")
	}
	return presenter.JSON(c, http.StatusOK, items)
}

func splitCSV(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return strings.Split(s, ",")
}

func readAtMost(f multipart.File, max int64) ([]byte, error) {
	limited := io.LimitReader(f, max+1)
	b, err := io.ReadAll(limited)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	if int64(len(b)) > max {
		return nil, fmt.Errorf("file too large: limit is %d bytes", max)
	}
	return b, nil
}
