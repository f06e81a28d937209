// Package client is a typed helper for the Scholarship & Resume API.
// Frontends and scripts call the HTTP surface exclusively through it.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strings"
	"time"
)

// studentHeader carries the student identity on routes without a
// student id in the path. Must match the server's resolver.
const studentHeader = "X-Student-Id"

// Resume is a stored resume as returned by the API
type Resume struct {
	ResumeID string                 `json:"resumeId"`
	FileName string                 `json:"fileName"`
	URL      string                 `json:"url"`
	Meta     map[string]interface{} `json:"meta,omitempty"`
}

// ResumeForm is the form-based resume creation payload
type ResumeForm struct {
	Name         string `json:"name"`
	Major        string `json:"major"`
	Grade        string `json:"grade"`
	Certificates string `json:"certificates"`
}

// Conditions describes eligibility requirements of a catalog entry
type Conditions struct {
	Grade        []string `json:"grade,omitempty"`
	Major        []string `json:"major,omitempty"`
	GPA          *float64 `json:"gpa,omitempty"`
	Income       string   `json:"income,omitempty"`
	Certificates []string `json:"certificates,omitempty"`
}

// Scholarship is one catalog entry as returned by the API
type Scholarship struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	Summary         string     `json:"summary"`
	Organization    string     `json:"organization"`
	Amount          string     `json:"amount"`
	Deadline        string     `json:"deadline"`
	ApplicationLink string     `json:"applicationLink"`
	Conditions      Conditions `json:"conditions"`
	Category        string     `json:"category"`
	Source          string     `json:"source"`
	IsNew           bool       `json:"isNew"`
	ViewCount       int        `json:"viewCount"`
}

// SaveResult acknowledges a save/unsave operation
type SaveResult struct {
	Success       bool   `json:"success"`
	ScholarshipID string `json:"scholarshipId"`
}

// APIError is a non-2xx response decoded from the API's error body
type APIError struct {
	StatusCode int
	Detail     string
}

// Error implements error interface
func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Detail)
}

// Client calls the Scholarship & Resume API
type Client struct {
	baseURL string
	httpc   *http.Client
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(httpc *http.Client) Option {
	return func(c *Client) {
		c.httpc = httpc
	}
}

// New creates a client for the API at baseURL
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// do issues the request and decodes either the expected body or an
// APIError from the {"detail": ...} error shape.
func (c *Client) do(req *http.Request, out interface{}) error {
	resp, err := c.httpc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var body struct {
			Detail string `json:"detail"`
		}
		if decodeErr := json.NewDecoder(resp.Body).Decode(&body); decodeErr == nil {
			apiErr.Detail = body.Detail
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	return http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
}

// UploadResume uploads a PDF resume for a student
func (c *Client) UploadResume(ctx context.Context, studentID, fileName string, content []byte, meta map[string]interface{}) (*Resume, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, fileName))
	header.Set("Content-Type", "application/pdf")
	part, err := writer.CreatePart(header)
	if err != nil {
		return nil, fmt.Errorf("failed to build multipart body: %w", err)
	}
	if _, err := part.Write(content); err != nil {
		return nil, fmt.Errorf("failed to build multipart body: %w", err)
	}

	metaJSON, err := json.Marshal(meta)
	if err != nil {
		return nil, fmt.Errorf("failed to encode meta: %w", err)
	}
	if err := writer.WriteField("meta", string(metaJSON)); err != nil {
		return nil, fmt.Errorf("failed to build multipart body: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to build multipart body: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/api/students/"+url.PathEscape(studentID)+"/resume", &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resume := &Resume{}
	if err := c.do(req, resume); err != nil {
		return nil, err
	}
	return resume, nil
}

// WriteResume creates a resume from form input instead of a file
func (c *Client) WriteResume(ctx context.Context, studentID string, form ResumeForm) (*Resume, error) {
	body, err := json.Marshal(form)
	if err != nil {
		return nil, fmt.Errorf("failed to encode form: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/api/students/"+url.PathEscape(studentID)+"/resume/write", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resume := &Resume{}
	if err := c.do(req, resume); err != nil {
		return nil, err
	}
	return resume, nil
}

// GetResume fetches a student's resume record
func (c *Client) GetResume(ctx context.Context, studentID string) (*Resume, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/api/students/"+url.PathEscape(studentID)+"/resume", nil)
	if err != nil {
		return nil, err
	}

	resume := &Resume{}
	if err := c.do(req, resume); err != nil {
		return nil, err
	}
	return resume, nil
}

// DownloadResume fetches the raw stored file bytes
func (c *Client) DownloadResume(ctx context.Context, studentID, storedFileName string) ([]byte, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/api/resume-files/"+url.PathEscape(studentID)+"/"+url.PathEscape(storedFileName), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var body struct {
			Detail string `json:"detail"`
		}
		if decodeErr := json.NewDecoder(resp.Body).Decode(&body); decodeErr == nil {
			apiErr.Detail = body.Detail
		}
		return nil, apiErr
	}

	return io.ReadAll(resp.Body)
}

// ListScholarships fetches the catalog, optionally filtered by category
// ("scholarship" or "competition"; empty for all).
func (c *Client) ListScholarships(ctx context.Context, category string) ([]Scholarship, error) {
	path := "/api/scholarships"
	if category != "" {
		path += "?category=" + url.QueryEscape(category)
	}

	req, err := c.newRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	var entries []Scholarship
	if err := c.do(req, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// GetScholarship fetches one catalog entry
func (c *Client) GetScholarship(ctx context.Context, id string) (*Scholarship, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/api/scholarships/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, err
	}

	entry := &Scholarship{}
	if err := c.do(req, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// ListSaved fetches the student's saved scholarships
func (c *Client) ListSaved(ctx context.Context, studentID string) ([]Scholarship, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/api/scholarships/saved", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set(studentHeader, studentID)

	var entries []Scholarship
	if err := c.do(req, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// SaveScholarship bookmarks a scholarship for the student
func (c *Client) SaveScholarship(ctx context.Context, studentID, id string) (*SaveResult, error) {
	return c.updateSaved(ctx, http.MethodPost, studentID, id)
}

// UnsaveScholarship removes a bookmark for the student
func (c *Client) UnsaveScholarship(ctx context.Context, studentID, id string) (*SaveResult, error) {
	return c.updateSaved(ctx, http.MethodDelete, studentID, id)
}

func (c *Client) updateSaved(ctx context.Context, method, studentID, id string) (*SaveResult, error) {
	req, err := c.newRequest(ctx, method, "/api/scholarships/"+url.PathEscape(id)+"/save", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set(studentHeader, studentID)

	result := &SaveResult{}
	if err := c.do(req, result); err != nil {
		return nil, err
	}
	return result, nil
}
