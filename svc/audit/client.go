package audit

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/platformkit/platformkit/pkg/apiclient"
)

// Client talks to the platform audit log service.
type Client struct {
	api *apiclient.Client
}

// NewClient wraps the shared API client with audit service calls.
func NewClient(api *apiclient.Client) *Client {
	return &Client{api: api}
}

// Log records an audit event and returns the stored entry.
func (c *Client) Log(ctx context.Context, event Event) (*Entry, error) {
	var entry Entry
	if err := c.api.Post(ctx, "/audit", event, &entry); err != nil {
		return nil, fmt.Errorf("log audit event: %w", err)
	}
	return &entry, nil
}

// ListFilter narrows List results. Zero values are omitted; times are
// sent as RFC 3339.
type ListFilter struct {
	EventType    EventType
	ActorID      string
	ResourceType string
	ResourceID   string
	StartDate    time.Time
	EndDate      time.Time
}

func (f ListFilter) values() url.Values {
	v := url.Values{}
	if f.EventType != "" {
		v.Set("event_type", string(f.EventType))
	}
	if f.ActorID != "" {
		v.Set("actor_id", f.ActorID)
	}
	if f.ResourceType != "" {
		v.Set("resource_type", f.ResourceType)
	}
	if f.ResourceID != "" {
		v.Set("resource_id", f.ResourceID)
	}
	if !f.StartDate.IsZero() {
		v.Set("start_date", f.StartDate.Format(time.RFC3339))
	}
	if !f.EndDate.IsZero() {
		v.Set("end_date", f.EndDate.Format(time.RFC3339))
	}
	return v
}

// List returns a page of audit entries matching the filter.
func (c *Client) List(ctx context.Context, params apiclient.ListParams, filter ListFilter) (*ListResponse, error) {
	if len(params.Filters) == 0 {
		params.Filters = filter.values()
	} else {
		for k, vals := range filter.values() {
			for _, val := range vals {
				params.Filters.Add(k, val)
			}
		}
	}

	var resp ListResponse
	if err := c.api.Get(ctx, "/audit", params.Query(), &resp); err != nil {
		return nil, fmt.Errorf("list audit entries: %w", err)
	}
	return &resp, nil
}

// Get fetches a single audit entry by ID.
func (c *Client) Get(ctx context.Context, entryID string) (*Entry, error) {
	var entry Entry
	if err := c.api.Get(ctx, "/audit/"+url.PathEscape(entryID), nil, &entry); err != nil {
		if errors.Is(err, apiclient.ErrNotFound) {
			return nil, errors.Join(ErrEntryNotFound, err)
		}
		return nil, fmt.Errorf("get audit entry: %w", err)
	}
	return &entry, nil
}

// ExportFormat selects the serialization of an audit export.
type ExportFormat string

const (
	ExportCSV  ExportFormat = "csv"
	ExportJSON ExportFormat = "json"
)

// Export downloads the audit entries matching the filter in the given
// format and returns the raw payload.
func (c *Client) Export(ctx context.Context, format ExportFormat, filter ListFilter) ([]byte, error) {
	q := filter.values()
	q.Set("format", string(format))

	data, err := c.api.GetRaw(ctx, "/audit/export", q)
	if err != nil {
		return nil, fmt.Errorf("export audit entries: %w", err)
	}
	return data, nil
}

// ByResource returns the audit trail of one resource.
func (c *Client) ByResource(ctx context.Context, resourceType, resourceID string, params apiclient.ListParams) (*ListResponse, error) {
	return c.List(ctx, params, ListFilter{ResourceType: resourceType, ResourceID: resourceID})
}

// ByActor returns the audit trail of one actor.
func (c *Client) ByActor(ctx context.Context, actorID string, params apiclient.ListParams) (*ListResponse, error) {
	return c.List(ctx, params, ListFilter{ActorID: actorID})
}
