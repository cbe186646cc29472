package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/softwareslayer/internal/client/models"
	"github.com/dmitrijs2005/softwareslayer/internal/common"
	"github.com/dmitrijs2005/softwareslayer/internal/logging"
	"github.com/google/uuid"
)

const maxErrorBody = 64 << 10

type HTTPClient struct {
	baseURL string
	client  *http.Client
	log     logging.Logger
}

func NewHTTPClient(baseURL string, timeout time.Duration, logger logging.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Timeout: timeout,
		},
		log: logger.With("component", "http-client"),
	}
}

func (c *HTTPClient) Register(ctx context.Context, req RegisterRequest) error {
	return c.do(ctx, http.MethodPost, "/user", "", req, nil, "Failed to create user")
}

func (c *HTTPClient) Login(ctx context.Context, identifier, password string) (*LoginResponse, error) {
	var resp LoginResponse
	err := c.do(ctx, http.MethodPost, "/login", "", loginRequest{Identifier: identifier, Password: password}, &resp, "Failed to log in")
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// Ping reports whether the backend answers at all. The categories endpoint
// is public and cheap, so it doubles as the liveness probe.
func (c *HTTPClient) Ping(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/learning/categories", "", nil, nil, "Server unavailable")
}

func (c *HTTPClient) ListCategories(ctx context.Context) ([]string, error) {
	var categories []string
	if err := c.do(ctx, http.MethodGet, "/learning/categories", "", nil, &categories, "Failed to get learning categories"); err != nil {
		return nil, err
	}
	return categories, nil
}

func (c *HTTPClient) ListLearnings(ctx context.Context, userID int64) ([]models.LearningItem, error) {
	var items []models.LearningItem
	path := fmt.Sprintf("/learning/%d", userID)
	if err := c.do(ctx, http.MethodGet, path, "", nil, &items, "Failed to get learning items"); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *HTTPClient) CreateLearning(ctx context.Context, token, title, category string) error {
	body := createLearningRequest{Title: title, Category: category}
	return c.do(ctx, http.MethodPost, "/learning", token, body, nil, "Failed to add learning item")
}

func (c *HTTPClient) DeleteLearning(ctx context.Context, token string, id int64) error {
	path := fmt.Sprintf("/learning/%d", id)
	return c.do(ctx, http.MethodDelete, path, token, nil, nil, "Failed to remove learning item")
}

func (c *HTTPClient) ListSkills(ctx context.Context, token string, userID int64) ([]string, error) {
	var skills []string
	path := fmt.Sprintf("/skill/%d", userID)
	if err := c.do(ctx, http.MethodGet, path, token, nil, &skills, "Failed to get skills"); err != nil {
		return nil, err
	}
	return skills, nil
}

func (c *HTTPClient) CreateSkill(ctx context.Context, token, topic string) error {
	return c.do(ctx, http.MethodPost, "/skill", token, skillRequest{Topic: topic}, nil, "Failed to add skill")
}

func (c *HTTPClient) UpdateSkill(ctx context.Context, token, oldTopic, newTopic string) error {
	body := updateSkillRequest{OldTopic: oldTopic, UpdatedTopic: newTopic}
	return c.do(ctx, http.MethodPut, "/skill", token, body, nil, "Failed to update skill")
}

func (c *HTTPClient) DeleteSkill(ctx context.Context, token, topic string) error {
	return c.do(ctx, http.MethodDelete, "/skill/"+url.PathEscape(topic), token, nil, nil, "Failed to remove skill")
}

// do sends one JSON request. A nil in sends no body; a nil out discards the
// response body. Non-2xx statuses come back as *APIError carrying either the
// server's message or defaultMsg.
func (c *HTTPClient) do(ctx context.Context, method, path, token string, in, out any, defaultMsg string) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode %s %s request: %w", method, path, err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to create %s %s request: %w", method, path, err)
	}

	requestID := uuid.NewString()
	req.Header.Set(common.RequestIDHeaderName, requestID)
	req.Header.Set("Accept", common.ContentTypeJSON)
	if in != nil {
		req.Header.Set("Content-Type", common.ContentTypeJSON)
	}
	if token != "" {
		req.Header.Set(common.AuthorizationHeaderName, token)
	}

	log := c.log.With("method", method, "path", path, "request_id", requestID)
	log.Debug(ctx, "sending request")

	resp, err := c.client.Do(req)
	if err != nil {
		log.Warn(ctx, "request failed", "error", err)
		return fmt.Errorf("%w: %s %s: %v", ErrUnavailable, method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: defaultMsg}

		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		var er errorResponse
		if err := json.Unmarshal(raw, &er); err != nil {
			log.Debug(ctx, "failed to parse error response", "error", err)
		} else if er.Message != "" {
			apiErr.Message = er.Message
		}

		log.Warn(ctx, "request rejected", "status", resp.StatusCode, "message", apiErr.Message)
		return apiErr
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		log.Error(ctx, "failed to decode response", "error", err)
		return fmt.Errorf("%w: %s %s: %v", ErrBadResponse, method, path, err)
	}

	return nil
}
