package hackmd

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

	"github.com/charmbracelet/log"

	apperrors "github.com/dials/corenote/internal/errors"
	"github.com/dials/corenote/internal/logger"
	"github.com/dials/corenote/internal/models"
)

const (
	DefaultBaseURL = "https://api.hackmd.io/v1"
	serviceName    = "hackmd"
)

// Client talks to the HackMD v1 REST API.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	log        *log.Logger
}

// NewClient creates a Client. An empty baseURL selects the public API.
func NewClient(baseURL, token string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		httpClient: &http.Client{Timeout: timeout},
		log:        logger.With("adapter", serviceName),
	}
}

// ListTeamNotes returns every note of the team, without content.
func (c *Client) ListTeamNotes(ctx context.Context, team string) ([]models.Note, error) {
	var notes []models.Note
	if err := c.do(ctx, http.MethodGet, "/teams/"+url.PathEscape(team)+"/notes", nil, &notes); err != nil {
		return nil, err
	}
	c.log.Debug("listed team notes", "team", team, "count", len(notes))
	return notes, nil
}

// GetNote returns a single note including its content.
func (c *Client) GetNote(ctx context.Context, id string) (models.Note, error) {
	var note models.Note
	if err := c.do(ctx, http.MethodGet, "/notes/"+url.PathEscape(id), nil, &note); err != nil {
		return models.Note{}, err
	}
	return note, nil
}

// CreateNote creates a note in the team workspace and returns it with its new ID.
func (c *Client) CreateNote(ctx context.Context, team string, note models.NewNote) (models.Note, error) {
	var created models.Note
	if err := c.do(ctx, http.MethodPost, "/teams/"+url.PathEscape(team)+"/notes", note, &created); err != nil {
		return models.Note{}, err
	}
	if created.ID == "" {
		return models.Note{}, fmt.Errorf("hackmd: create note %q: response has no id", note.Title)
	}
	c.log.Info("created note", "id", created.ID, "title", created.Title)
	return created, nil
}

func (c *Client) do(ctx context.Context, method, path string, in, out interface{}) error {
	reqURL := c.baseURL + path

	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("hackmd: encode request: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, body)
	if err != nil {
		return fmt.Errorf("hackmd: create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.log.Debug("request", "method", method, "url", reqURL)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("hackmd: %s %s: %w", method, reqURL, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("hackmd: read body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &apperrors.ExternalCallError{
			Service:    serviceName,
			Method:     method,
			URL:        reqURL,
			StatusCode: resp.StatusCode,
			Body:       string(respBody),
		}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("hackmd: decode json: %w", err)
	}
	return nil
}
