package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hyejin/scholarhub/internal/app/auth"
	"github.com/hyejin/scholarhub/internal/app/controllers"
	"github.com/hyejin/scholarhub/internal/app/models/dto"
	"github.com/hyejin/scholarhub/internal/app/routes"
	"github.com/hyejin/scholarhub/internal/app/services"
	"github.com/hyejin/scholarhub/internal/catalog"
	"github.com/hyejin/scholarhub/internal/storage/objectstore"
	"github.com/hyejin/scholarhub/internal/storage/recordstore"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dir := t.TempDir()
	objects, err := objectstore.NewLocalStore(dir)
	require.NoError(t, err)
	records, err := recordstore.NewLocalStore(filepath.Join(dir, "records.json"))
	require.NoError(t, err)

	resumeService := services.NewResumeService(objects, records, "/api/resume-files")
	scholarshipService := services.NewScholarshipService(catalog.Default(), records)

	router := gin.New()
	routes.SetupRouter(
		router,
		controllers.NewResumeController(resumeService),
		controllers.NewScholarshipController(scholarshipService, auth.NewHeaderStudentResolver()),
	)
	return router
}

func perform(router *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func multipartPDF(t *testing.T, fileName string, content []byte, meta string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, fileName))
	header.Set("Content-Type", "application/pdf")
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)

	if meta != "" {
		require.NoError(t, writer.WriteField("meta", meta))
	}
	require.NoError(t, writer.Close())
	return &buf, writer.FormDataContentType()
}

func decodeDetail(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Detail
}

func TestHealthAndIndex(t *testing.T) {
	router := newTestRouter(t)

	rec := perform(router, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	rec = perform(router, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "/api/scholarships")
}

func TestResumeUploadFlow(t *testing.T) {
	router := newTestRouter(t)

	body, contentType := multipartPDF(t, "my_resume.pdf", []byte("%PDF-1.4\ncontent"), `{"gpa":3.8}`)
	req := httptest.NewRequest(http.MethodPost, "/api/students/20250001/resume", body)
	req.Header.Set("Content-Type", contentType)

	rec := perform(router, req)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var uploaded dto.ResumeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &uploaded))
	assert.NotEmpty(t, uploaded.ResumeID)
	assert.Equal(t, "my_resume.pdf", uploaded.FileName)
	assert.Equal(t, "upload", uploaded.Meta["source"])
	assert.True(t, strings.HasPrefix(uploaded.URL, "/api/resume-files/20250001/"))

	// The record is retrievable
	rec = perform(router, httptest.NewRequest(http.MethodGet, "/api/students/20250001/resume", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var got dto.ResumeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, uploaded.ResumeID, got.ResumeID)

	// The returned url serves the original bytes
	rec = perform(router, httptest.NewRequest(http.MethodGet, uploaded.URL, nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []byte("%PDF-1.4\ncontent"), rec.Body.Bytes())
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "attachment")
}

func TestResumeUploadRejections(t *testing.T) {
	router := newTestRouter(t)

	t.Run("missing file", func(t *testing.T) {
		var buf bytes.Buffer
		writer := multipart.NewWriter(&buf)
		require.NoError(t, writer.Close())
		req := httptest.NewRequest(http.MethodPost, "/api/students/20250001/resume", &buf)
		req.Header.Set("Content-Type", writer.FormDataContentType())

		rec := perform(router, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Invalid or missing file.", decodeDetail(t, rec))
	})

	t.Run("invalid meta json", func(t *testing.T) {
		body, contentType := multipartPDF(t, "resume.pdf", []byte("%PDF-1.4\n"), "{not json")
		req := httptest.NewRequest(http.MethodPost, "/api/students/20250001/resume", body)
		req.Header.Set("Content-Type", contentType)

		rec := perform(router, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "`meta` must be valid JSON.", decodeDetail(t, rec))
	})

	t.Run("non-pdf file name", func(t *testing.T) {
		body, contentType := multipartPDF(t, "resume.docx", []byte("%PDF-1.4\n"), "")
		req := httptest.NewRequest(http.MethodPost, "/api/students/20250001/resume", body)
		req.Header.Set("Content-Type", contentType)

		rec := perform(router, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Only PDF uploads are allowed.", decodeDetail(t, rec))
	})
}

func TestResumeGetMissing(t *testing.T) {
	router := newTestRouter(t)

	rec := perform(router, httptest.NewRequest(http.MethodGet, "/api/students/nobody/resume", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Resume not found for this student.", decodeDetail(t, rec))
}

func TestResumeWriteForm(t *testing.T) {
	router := newTestRouter(t)

	form := `{"name":"김철수","major":"컴퓨터공학","grade":"3학년","certificates":"TOEIC 850"}`
	req := httptest.NewRequest(http.MethodPost, "/api/students/20250001/resume/write", strings.NewReader(form))
	req.Header.Set("Content-Type", "application/json")

	rec := perform(router, req)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var written dto.ResumeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &written))
	assert.Equal(t, "resume_김철수.pdf", written.FileName)
	assert.Equal(t, "write", written.Meta["source"])
}

func TestResumeWriteFormRejectsMissingFields(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/students/20250001/resume/write", strings.NewReader(`{"name":"김철수"}`))
	req.Header.Set("Content-Type", "application/json")

	rec := perform(router, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid resume form data.", decodeDetail(t, rec))
}

func TestScholarshipListing(t *testing.T) {
	router := newTestRouter(t)

	rec := perform(router, httptest.NewRequest(http.MethodGet, "/api/scholarships", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var all []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &all))
	assert.Len(t, all, 5)

	rec = perform(router, httptest.NewRequest(http.MethodGet, "/api/scholarships?category=competition", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var competitions []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &competitions))
	require.Len(t, competitions, 1)
	assert.Equal(t, "3", competitions[0]["id"])

	rec = perform(router, httptest.NewRequest(http.MethodGet, "/api/scholarships?category=grant", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid category filter.", decodeDetail(t, rec))
}

func TestScholarshipGetByID(t *testing.T) {
	router := newTestRouter(t)

	rec := perform(router, httptest.NewRequest(http.MethodGet, "/api/scholarships/1", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &entry))
	assert.Equal(t, "1", entry["id"])

	rec = perform(router, httptest.NewRequest(http.MethodGet, "/api/scholarships/999", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Scholarship not found.", decodeDetail(t, rec))
}

func TestSavedScholarshipFlow(t *testing.T) {
	router := newTestRouter(t)

	// Identity header is required
	rec := perform(router, httptest.NewRequest(http.MethodGet, "/api/scholarships/saved", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Missing student identity.", decodeDetail(t, rec))

	withStudent := func(method, target string) *http.Request {
		req := httptest.NewRequest(method, target, nil)
		req.Header.Set(auth.DefaultStudentHeader, "20250001")
		return req
	}

	// Empty list before saving anything
	rec = perform(router, withStudent(http.MethodGet, "/api/scholarships/saved"))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	// Save two entries
	for _, id := range []string{"3", "1"} {
		rec = perform(router, withStudent(http.MethodPost, "/api/scholarships/"+id+"/save"))
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		var saved dto.SaveResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &saved))
		assert.True(t, saved.Success)
		assert.Equal(t, id, saved.ScholarshipID)
	}

	// Saving an unknown id fails
	rec = perform(router, withStudent(http.MethodPost, "/api/scholarships/999/save"))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// Listing follows catalog order
	rec = perform(router, withStudent(http.MethodGet, "/api/scholarships/saved"))
	require.Equal(t, http.StatusOK, rec.Code)
	var entries []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &entries))
	require.Len(t, entries, 2)
	assert.Equal(t, "1", entries[0]["id"])
	assert.Equal(t, "3", entries[1]["id"])

	// Unsave, including one that was never saved
	rec = perform(router, withStudent(http.MethodDelete, "/api/scholarships/1/save"))
	assert.Equal(t, http.StatusOK, rec.Code)
	rec = perform(router, withStudent(http.MethodDelete, "/api/scholarships/5/save"))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = perform(router, withStudent(http.MethodGet, "/api/scholarships/saved"))
	require.Equal(t, http.StatusOK, rec.Code)
	entries = nil
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, "3", entries[0]["id"])
}
