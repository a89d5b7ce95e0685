package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/attendly/attendance-gateway-go/internal/domain/auth"
	"github.com/attendly/attendance-gateway-go/internal/domain/history"
	"github.com/attendly/attendance-gateway-go/internal/domain/leave"
	"github.com/attendly/attendance-gateway-go/internal/domain/profile"
)

// Client talks to the attendance backend. All responses share a loose
// envelope where failure is signaled by success:false plus a msg field,
// and proxy errors arrive as HTML pages instead of JSON.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// envelope is the common wrapper around backend responses. Success is a
// pointer because older endpoints omit the field entirely.
type envelope struct {
	Success *bool  `json:"success"`
	Msg     string `json:"msg"`
	Message string `json:"message"`
}

func (e envelope) failed() bool {
	return e.Success != nil && !*e.Success
}

func (e envelope) text() string {
	if e.Msg != "" {
		return e.Msg
	}
	if e.Message != "" {
		return e.Message
	}
	return "request failed"
}

// do performs one request and returns the raw body after envelope checks.
func (c *Client) do(ctx context.Context, method, path string, payload any) ([]byte, error) {
	var body io.Reader
	if payload != nil {
		buf, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("marshal request: %w", err)
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("%w: %v", ErrConnectionFailed, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConnectionFailed, err)
	}

	return c.check(resp.StatusCode, raw)
}

// check applies the shared response rules: HTML bodies mean the request
// never reached the application, and success:false or a non-2xx status
// means the backend rejected it.
func (c *Client) check(status int, raw []byte) ([]byte, error) {
	if isHTML(raw) {
		return nil, &Error{Status: status, Msg: "Server returned an error page"}
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err == nil {
		if env.failed() {
			return nil, &Error{Status: status, Msg: env.text()}
		}
		if status < 200 || status >= 300 {
			return nil, &Error{Status: status, Msg: env.text()}
		}
		return raw, nil
	}

	if status < 200 || status >= 300 {
		return nil, &Error{Status: status, Msg: http.StatusText(status)}
	}
	return raw, nil
}

func isHTML(raw []byte) bool {
	head := strings.ToLower(string(bytes.TrimSpace(raw)))
	if len(head) > 64 {
		head = head[:64]
	}
	return strings.HasPrefix(head, "<html") || strings.HasPrefix(head, "<!doctype")
}

// LoginByPIN resolves a PIN to an employee identity.
func (c *Client) LoginByPIN(ctx context.Context, pin string) (auth.Employee, error) {
	raw, err := c.do(ctx, http.MethodPost, "/login_pin", map[string]string{"pin": pin})
	if err != nil {
		return auth.Employee{}, err
	}

	var out struct {
		envelope
		Employee auth.Employee `json:"employee"`
		ID       string        `json:"id"`
		Name     string        `json:"name"`
		EmpCode  string        `json:"emp_code"`
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return auth.Employee{}, &Error{Msg: "unexpected login response"}
	}
	// Newer deployments nest the employee, older ones inline the fields.
	if out.Employee.ID != "" {
		return out.Employee, nil
	}
	return auth.Employee{ID: out.ID, Name: out.Name, EmpCode: out.EmpCode}, nil
}

// WhoAmI looks up the employee bound to a PIN without logging in.
func (c *Client) WhoAmI(ctx context.Context, pin string) (auth.Employee, error) {
	raw, err := c.do(ctx, http.MethodGet, "/mobile/whoami/"+pin, nil)
	if err != nil {
		return auth.Employee{}, err
	}

	var out struct {
		Employee auth.Employee `json:"employee"`
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return auth.Employee{}, &Error{Msg: "unexpected whoami response"}
	}
	return out.Employee, nil
}

// PunchPayload is the punch request as the backend expects it.
type PunchPayload struct {
	PIN       string  `json:"pin"`
	Type      string  `json:"type"`
	Latitude  float64 `json:"latitude,omitempty"`
	Longitude float64 `json:"longitude,omitempty"`
	Address   string  `json:"address,omitempty"`
}

// Punch records a clock in or clock out and returns the backend's message.
func (c *Client) Punch(ctx context.Context, payload PunchPayload) (string, error) {
	raw, err := c.do(ctx, http.MethodPost, "/mobile/punch", payload)
	if err != nil {
		return "", err
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return "", &Error{Msg: "unexpected punch response"}
	}
	return env.text(), nil
}

// FetchHistory implements history.Provider. Transport failures degrade to
// an empty Payload so the caller always gets a renderable result; only
// context cancellation is reported as an error.
func (c *Client) FetchHistory(ctx context.Context, employeeID string) (history.Payload, error) {
	raw, err := c.do(ctx, http.MethodGet, "/mobile/history/"+employeeID, nil)
	if err != nil {
		if ctx.Err() != nil {
			return history.Payload{}, ctx.Err()
		}
		return history.Payload{}, nil
	}

	var payload history.Payload
	if err := json.Unmarshal(raw, &payload); err == nil {
		if payload.Attendance != nil || payload.Leaves != nil {
			return payload, nil
		}
	}

	// Some deployments return the attendance list bare, with leaves folded in.
	var records []history.RawRecord
	if err := json.Unmarshal(raw, &records); err == nil {
		return history.Payload{Attendance: records}, nil
	}

	return history.Payload{}, nil
}

// Profile fetches the employee record by employee code.
func (c *Client) Profile(ctx context.Context, empCode string) (profile.Profile, error) {
	raw, err := c.do(ctx, http.MethodPost, "/profile", map[string]string{"emp_code": empCode})
	if err != nil {
		return profile.Profile{}, err
	}

	var out struct {
		Profile  *profile.Profile `json:"profile"`
		Employee *profile.Profile `json:"employee"`
	}
	if err := json.Unmarshal(raw, &out); err == nil {
		if out.Profile != nil {
			return *out.Profile, nil
		}
		if out.Employee != nil {
			return *out.Employee, nil
		}
	}

	var flat profile.Profile
	if err := json.Unmarshal(raw, &flat); err != nil || flat.ID == "" {
		return profile.Profile{}, profile.ErrProfileNotFound
	}
	return flat, nil
}

// ApplyLeave submits a leave application and returns the backend's message.
func (c *Client) ApplyLeave(ctx context.Context, req leave.ApplyRequest, requestID string) (string, error) {
	payload := map[string]string{
		"employee_id": req.EmployeeID,
		"type":        req.Type,
		"reason":      req.Reason,
		"request_id":  requestID,
	}
	if req.Type == leave.TypeCustom {
		payload["from_date"] = req.FromDate
		payload["to_date"] = req.ToDate
	}

	raw, err := c.do(ctx, http.MethodPost, "/api/leave", payload)
	if err != nil {
		return "", err
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return "", &Error{Msg: "unexpected leave response"}
	}
	return env.text(), nil
}

func (c *Client) photoPath(employeeID string) string {
	return "/mobile/employee/" + employeeID + "/photo"
}

// PhotoURL returns the public URL of an employee's photo on the backend.
func (c *Client) PhotoURL(employeeID string) string {
	return c.baseURL + c.photoPath(employeeID)
}

// HasPhoto reports whether the backend serves a photo for the employee.
func (c *Client) HasPhoto(ctx context.Context, employeeID string) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, c.PhotoURL(employeeID), nil)
	if err != nil {
		return false, fmt.Errorf("build request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return false, ctx.Err()
		}
		return false, fmt.Errorf("%w: %v", ErrConnectionFailed, err)
	}
	resp.Body.Close()

	return resp.StatusCode >= 200 && resp.StatusCode < 300, nil
}

// UploadPhoto replaces the employee's photo with the given file.
func (c *Client) UploadPhoto(ctx context.Context, employeeID string, file io.Reader, filename string) error {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	part, err := mw.CreateFormFile("photo", filename)
	if err != nil {
		return fmt.Errorf("build multipart body: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return fmt.Errorf("read photo: %w", err)
	}
	if err := mw.Close(); err != nil {
		return fmt.Errorf("finalize multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+c.photoPath(employeeID), &buf)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.http.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("%w: %v", ErrConnectionFailed, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrConnectionFailed, err)
	}
	_, err = c.check(resp.StatusCode, raw)
	return err
}

// DeletePhoto removes the employee's photo on the backend.
func (c *Client) DeletePhoto(ctx context.Context, employeeID string) error {
	_, err := c.do(ctx, http.MethodDelete, c.photoPath(employeeID), nil)
	return err
}
