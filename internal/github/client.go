package github

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	apperrors "github.com/dials/corenote/internal/errors"
	"github.com/dials/corenote/internal/logger"
	"github.com/dials/corenote/internal/models"
)

const (
	DefaultGraphQLURL = "https://api.github.com/graphql"
	serviceName       = "github"
)

// Client reads and commits knowledge base files through the GitHub GraphQL API.
type Client struct {
	endpoint   string
	token      string
	httpClient *http.Client
	log        *log.Logger
	newID      func() string
}

// NewClient creates a Client. An empty endpoint selects api.github.com.
func NewClient(endpoint, token string, timeout time.Duration) *Client {
	if endpoint == "" {
		endpoint = DefaultGraphQLURL
	}
	return &Client{
		endpoint:   endpoint,
		token:      token,
		httpClient: &http.Client{Timeout: timeout},
		log:        logger.With("adapter", serviceName),
		newID:      uuid.NewString,
	}
}

// QueryFileAtHead returns the head commit of the branch and the file content at that commit.
// Content is nil when the file does not exist on the branch.
func (c *Client) QueryFileAtHead(ctx context.Context, ref models.FileRef) (models.FileAtHead, error) {
	vars := map[string]interface{}{
		"owner":         ref.Owner,
		"name":          ref.Repo,
		"qualifiedName": "refs/heads/" + ref.Branch,
		"path":          ref.Path,
	}

	var data fileAtHeadData
	if err := c.query(ctx, fileAtHeadQuery, vars, &data); err != nil {
		return models.FileAtHead{}, err
	}
	if data.Repository == nil {
		return models.FileAtHead{}, fmt.Errorf("github: repository %s/%s not found", ref.Owner, ref.Repo)
	}
	if data.Repository.Ref == nil {
		return models.FileAtHead{}, fmt.Errorf("github: branch %q not found in %s/%s", ref.Branch, ref.Owner, ref.Repo)
	}

	target := data.Repository.Ref.Target
	head := models.FileAtHead{HeadRevisionID: target.OID}
	if target.File != nil && target.File.Object != nil && target.File.Object.Text != nil {
		text := *target.File.Object.Text
		head.Content = &text
	}

	c.log.Debug("queried file at head", "path", ref.Path, "oid", head.HeadRevisionID, "exists", head.Content != nil)
	return head, nil
}

// CommitFileChange writes a single file on the branch in a new commit, provided the branch
// still points at change.ExpectedHeadRevisionID. It returns the commit URL.
func (c *Client) CommitFileChange(ctx context.Context, change models.FileChange) (string, error) {
	input := commitInput{
		ClientMutationID: c.newID(),
		Branch: branchInput{
			RepositoryNameWithOwner: change.Owner + "/" + change.Repo,
			BranchName:              change.Branch,
		},
		ExpectedHeadOID: change.ExpectedHeadRevisionID,
		Message:         commitMessage{Headline: change.Message},
		FileChanges: fileChangesInput{
			Additions: []fileAddition{{
				Path:     change.Path,
				Contents: base64.StdEncoding.EncodeToString([]byte(change.Content)),
			}},
		},
	}

	var data createCommitData
	if err := c.query(ctx, createCommitMutation, map[string]interface{}{"input": input}, &data); err != nil {
		return "", err
	}
	if data.CreateCommitOnBranch == nil {
		return "", fmt.Errorf("github: createCommitOnBranch returned no commit")
	}

	url := data.CreateCommitOnBranch.Commit.URL
	c.log.Info("committed file", "path", change.Path, "commit", url)
	return url, nil
}

func (c *Client) query(ctx context.Context, query string, vars map[string]interface{}, out interface{}) error {
	payload, err := json.Marshal(graphQLRequest{Query: query, Variables: vars})
	if err != nil {
		return fmt.Errorf("github: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("github: create request: %w", err)
	}
	req.Header.Set("Authorization", "bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")

	c.log.Debug("graphql request", "url", c.endpoint)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("github: POST %s: %w", c.endpoint, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("github: read body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.callError(resp.StatusCode, string(body))
	}

	var gqlResp graphQLResponse
	if err := json.Unmarshal(body, &gqlResp); err != nil {
		return fmt.Errorf("github: decode json: %w", err)
	}

	if len(gqlResp.Errors) > 0 {
		if isStaleHead(gqlResp.Errors) {
			return fmt.Errorf("github: %w: %s", apperrors.ErrPreconditionMismatch, joinMessages(gqlResp.Errors))
		}
		return c.callError(resp.StatusCode, joinMessages(gqlResp.Errors))
	}

	if err := json.Unmarshal(gqlResp.Data, out); err != nil {
		return fmt.Errorf("github: decode data: %w", err)
	}
	return nil
}

func (c *Client) callError(status int, body string) error {
	return &apperrors.ExternalCallError{
		Service:    serviceName,
		Method:     http.MethodPost,
		URL:        c.endpoint,
		StatusCode: status,
		Body:       body,
	}
}

// isStaleHead recognizes the createCommitOnBranch failure for an outdated expectedHeadOid.
func isStaleHead(errs []graphQLError) bool {
	for _, e := range errs {
		if e.Type == "STALE_DATA" || strings.Contains(e.Message, "Expected branch to point to") {
			return true
		}
	}
	return false
}

func joinMessages(errs []graphQLError) string {
	msgs := make([]string, 0, len(errs))
	for _, e := range errs {
		msgs = append(msgs, e.Message)
	}
	return strings.Join(msgs, "; ")
}
