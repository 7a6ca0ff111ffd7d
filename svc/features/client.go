package features

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"

	"github.com/platformkit/platformkit/pkg/apiclient"
)

// Client talks to the platform feature flag service.
type Client struct {
	api *apiclient.Client
}

// NewClient wraps the shared API client with feature flag calls.
func NewClient(api *apiclient.Client) *Client {
	return &Client{api: api}
}

// ListFilter narrows List results.
type ListFilter struct {
	Tag     string
	Enabled *bool
}

func (f ListFilter) values() url.Values {
	v := url.Values{}
	if f.Tag != "" {
		v.Set("tag", f.Tag)
	}
	if f.Enabled != nil {
		v.Set("enabled", strconv.FormatBool(*f.Enabled))
	}
	return v
}

// List returns a page of flag definitions.
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
	if err := c.api.Get(ctx, "/features", params.Query(), &resp); err != nil {
		return nil, fmt.Errorf("list flags: %w", err)
	}
	return &resp, nil
}

// Get fetches a flag definition by key.
func (c *Client) Get(ctx context.Context, key string) (*Flag, error) {
	var flag Flag
	if err := c.api.Get(ctx, "/features/"+url.PathEscape(key), nil, &flag); err != nil {
		if errors.Is(err, apiclient.ErrNotFound) {
			return nil, errors.Join(ErrFlagNotFound, err)
		}
		return nil, fmt.Errorf("get flag: %w", err)
	}
	return &flag, nil
}

// Evaluate asks the server to evaluate a flag against a context. An
// unknown key is not an error: the result carries the default with
// reason "flag_not_found".
func (c *Client) Evaluate(ctx context.Context, key string, evalCtx Context, defaultValue any) (*Evaluation, error) {
	var result Evaluation
	if err := c.api.Post(ctx, "/features/"+url.PathEscape(key)+"/evaluate", evalCtx, &result); err != nil {
		if errors.Is(err, apiclient.ErrNotFound) {
			enabled, _ := defaultValue.(bool)
			return &Evaluation{
				Key:     key,
				Enabled: enabled,
				Value:   defaultValue,
				Reason:  "flag_not_found",
			}, nil
		}
		return nil, fmt.Errorf("evaluate flag: %w", err)
	}
	return &result, nil
}

// IsEnabled reports whether a flag is on for the context, falling back
// to defaultValue for unknown keys.
func (c *Client) IsEnabled(ctx context.Context, key string, evalCtx Context, defaultValue bool) (bool, error) {
	result, err := c.Evaluate(ctx, key, evalCtx, defaultValue)
	if err != nil {
		return false, err
	}
	return result.Enabled, nil
}

// Value returns a flag's value for the context, falling back to
// defaultValue for unknown keys.
func (c *Client) Value(ctx context.Context, key string, evalCtx Context, defaultValue any) (any, error) {
	result, err := c.Evaluate(ctx, key, evalCtx, defaultValue)
	if err != nil {
		return nil, err
	}
	return result.Value, nil
}

// EvaluateAll evaluates every flag for the context in one round-trip,
// keyed by flag key.
func (c *Client) EvaluateAll(ctx context.Context, evalCtx Context) (map[string]Evaluation, error) {
	var result map[string]Evaluation
	if err := c.api.Post(ctx, "/features/evaluate-all", evalCtx, &result); err != nil {
		return nil, fmt.Errorf("evaluate all flags: %w", err)
	}
	return result, nil
}
