// Package client carries the front-end logic of the booking system: a typed
// API client, explicit state containers, the directory filter, the booking
// submitter and the professor profile editor.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"professor-booking-server/internal/dto"
)

// Session token headers understood by the API server.
const (
	headerUserToken      = "token"
	headerProfessorToken = "dtoken"
)

// ErrUnauthenticated is returned when an operation needs a session token and
// none is held. No request is sent in that case.
var ErrUnauthenticated = errors.New("not authenticated")

// APIError is a failure reported by the backend with success=false.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

// Client talks to the booking API server.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

// New returns a Client for baseURL. A nil httpClient gets a 30s timeout client.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    httpClient,
	}
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// ListProfessors fetches the professor directory.
func (c *Client) ListProfessors(ctx context.Context) ([]dto.Professor, error) {
	var out []dto.Professor
	if _, err := c.do(ctx, http.MethodGet, "/api/professor/list", "", "", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ProfessorProfile fetches the profile of the professor owning dToken.
func (c *Client) ProfessorProfile(ctx context.Context, dToken string) (*dto.Professor, error) {
	var out dto.Professor
	if _, err := c.do(ctx, http.MethodGet, "/api/professor/profile", headerProfessorToken, dToken, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateProfile submits the professor's about text and availability flag and
// returns the backend message.
func (c *Client) UpdateProfile(ctx context.Context, dToken string, req dto.UpdateProfileRequest) (string, error) {
	return c.do(ctx, http.MethodPost, "/api/professor/update-profile", headerProfessorToken, dToken, req, nil)
}

// BookAppointment submits a booking and returns the backend message.
func (c *Client) BookAppointment(ctx context.Context, token string, req dto.BookAppointmentRequest) (string, error) {
	return c.do(ctx, http.MethodPost, "/api/user/book-appointment", headerUserToken, token, req, nil)
}

// MyAppointments lists the appointments of the user owning token.
func (c *Client) MyAppointments(ctx context.Context, token string) ([]dto.Appointment, error) {
	var out []dto.Appointment
	if _, err := c.do(ctx, http.MethodGet, "/api/user/appointments", headerUserToken, token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// LoginUser exchanges user credentials for a session token.
func (c *Client) LoginUser(ctx context.Context, email, password string) (string, error) {
	return c.login(ctx, "/api/user/login", email, password)
}

// LoginProfessor exchanges professor credentials for a session token.
func (c *Client) LoginProfessor(ctx context.Context, email, password string) (string, error) {
	return c.login(ctx, "/api/professor/login", email, password)
}

func (c *Client) login(ctx context.Context, path, email, password string) (string, error) {
	var out dto.LoginResponse
	req := dto.LoginRequest{Email: email, Password: password}
	if _, err := c.do(ctx, http.MethodPost, path, "", "", req, &out); err != nil {
		return "", err
	}
	return out.Token, nil
}

// do sends one request and decodes the response envelope. A body with
// success=false yields *APIError; anything that prevents reading an envelope
// is a transport error.
func (c *Client) do(ctx context.Context, method, path, header, token string, body, out interface{}) (string, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return "", fmt.Errorf("encode %s body: %w", path, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return "", fmt.Errorf("build %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if header != "" && token != "" {
		req.Header.Set(header, token)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return "", fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read %s response: %w", path, err)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return "", fmt.Errorf("%s %s: unexpected response (status %d): %w", method, path, resp.StatusCode, err)
	}
	if !env.Success {
		return "", &APIError{StatusCode: resp.StatusCode, Message: env.Message}
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return "", fmt.Errorf("decode %s data: %w", path, err)
		}
	}
	return env.Message, nil
}
