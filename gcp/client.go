package gcp

import (
	"context"
	"fmt"

	"cloud.google.com/go/logging"
	"google.golang.org/api/option"

	"github.com/kbukum/cloudlog"
)

// Client wraps a Cloud Logging client for one project.
type Client struct {
	client    *logging.Client
	projectID string
}

// NewClient connects to Cloud Logging for the given project using ambient
// default credentials unless overridden via client options.
func NewClient(ctx context.Context, projectID string, opts ...option.ClientOption) (*Client, error) {
	client, err := logging.NewClient(ctx, projectID, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating cloud logging client: %w", err)
	}
	return &Client{client: client, projectID: projectID}, nil
}

// ProjectID returns the project this client writes to.
func (c *Client) ProjectID() string { return c.projectID }

// Writer returns a cloudlog.Writer bound to the log stream named in cfg,
// with the configured resource descriptor as the stream's default resource.
// Extra logger options (delivery thresholds, entry limits) pass through to
// the cloud client.
func (c *Client) Writer(cfg cloudlog.Config, opts ...logging.LoggerOption) *Writer {
	cfg.ApplyDefaults()
	opts = append([]logging.LoggerOption{
		logging.CommonResource(toResource(cloudlog.Resource{
			Type:   cfg.ResourceType,
			Labels: cfg.ResourceLabels,
		})),
	}, opts...)
	return &Writer{logger: c.client.Logger(cfg.Name, opts...)}
}

// Close flushes buffered entries and closes the underlying client.
func (c *Client) Close() error {
	return c.client.Close()
}
