// Package cms fetches projects from the voice CMS API.
package cms

import (
	"context"
	"fmt"
	"strings"
	"time"

	resty "github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"voicecms/internal/domain"
	"voicecms/internal/domain/entities"
	"voicecms/internal/ports/output"
)

const (
	// DefaultTimeout is used when the configured timeout is zero.
	DefaultTimeout = 10 * time.Second

	// UserAgent is the user agent string for CMS requests.
	UserAgent = "voicecms/1.0"

	projectPath = "/projects/{projectId}"
)

var _ output.ProjectSource = (*Client)(nil)

// Client is the project fetcher. It issues exactly one request per Fetch;
// retries are disabled.
type Client struct {
	endpoint string
	http     *resty.Client
	logger   *zap.SugaredLogger
}

func NewClient(endpoint string, timeout time.Duration, logger *zap.SugaredLogger) *Client {
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	c := &Client{
		endpoint: strings.TrimRight(endpoint, "/"),
		logger:   logger,
	}
	c.http = createHTTPClient(timeout, logger)
	return c
}

func createHTTPClient(timeout time.Duration, logger *zap.SugaredLogger) *resty.Client {
	c := resty.New()
	c.SetLogger(logger)
	c.SetTimeout(timeout)
	c.SetRetryCount(0)
	c.SetHeader("User-Agent", UserAgent)
	c.SetHeader("Accept", "application/json")
	c.OnAfterResponse(func(_ *resty.Client, res *resty.Response) error {
		logger.Debugf("HTTP %s %s | %d | %s", res.Request.Method, res.Request.URL, res.StatusCode(), res.Time())
		return nil
	})
	return c
}

// Fetch requests the complete project (collections with items).
func (c *Client) Fetch(ctx context.Context, projectID string) (*entities.Project, error) {
	res, err := c.http.R().
		SetContext(ctx).
		SetPathParam("projectId", projectID).
		SetQueryParam("complete", "true").
		Get(c.endpoint + projectPath)
	if err != nil {
		return nil, fmt.Errorf("get project %s: %w: %w", projectID, domain.ErrTransport, err)
	}
	if !res.IsSuccess() {
		return nil, fmt.Errorf("get project %s: %s: %w", projectID, res.Status(), domain.ErrTransport)
	}

	project, err := DecodeProject(res.Body())
	if err != nil {
		return nil, fmt.Errorf("decode project %s: %w", projectID, err)
	}
	c.logger.Infof("cms: fetched project %s (%d locales, %d collections)", projectID, len(project.Locales), len(project.Collections))
	return project, nil
}
