package tenants

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/platformkit/platformkit/pkg/apiclient"
)

// Client talks to the platform tenant service.
type Client struct {
	api *apiclient.Client
}

// NewClient wraps the shared API client with tenant service calls.
func NewClient(api *apiclient.Client) *Client {
	return &Client{api: api}
}

// ListFilter narrows List results. Zero values are omitted.
type ListFilter struct {
	Status TenantStatus
	Plan   SubscriptionPlan
}

func (f ListFilter) values() url.Values {
	v := url.Values{}
	if f.Status != "" {
		v.Set("status", string(f.Status))
	}
	if f.Plan != "" {
		v.Set("plan", string(f.Plan))
	}
	return v
}

// List returns a page of tenants.
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
	if err := c.api.Get(ctx, "/tenants", params.Query(), &resp); err != nil {
		return nil, fmt.Errorf("list tenants: %w", err)
	}
	return &resp, nil
}

// Get fetches a tenant by ID.
func (c *Client) Get(ctx context.Context, tenantID string) (*Tenant, error) {
	var tenant Tenant
	if err := c.api.Get(ctx, "/tenants/"+url.PathEscape(tenantID), nil, &tenant); err != nil {
		if errors.Is(err, apiclient.ErrNotFound) {
			return nil, errors.Join(ErrTenantNotFound, err)
		}
		return nil, fmt.Errorf("get tenant: %w", err)
	}
	return &tenant, nil
}

// Create provisions a new tenant.
func (c *Client) Create(ctx context.Context, req CreateTenantRequest) (*Tenant, error) {
	var tenant Tenant
	if err := c.api.Post(ctx, "/tenants", req, &tenant); err != nil {
		return nil, fmt.Errorf("create tenant: %w", err)
	}
	return &tenant, nil
}

// Update applies a partial update to a tenant.
func (c *Client) Update(ctx context.Context, tenantID string, req UpdateTenantRequest) (*Tenant, error) {
	var tenant Tenant
	if err := c.api.Put(ctx, "/tenants/"+url.PathEscape(tenantID), req, &tenant); err != nil {
		if errors.Is(err, apiclient.ErrNotFound) {
			return nil, errors.Join(ErrTenantNotFound, err)
		}
		return nil, fmt.Errorf("update tenant: %w", err)
	}
	return &tenant, nil
}

// Delete soft-deletes a tenant.
func (c *Client) Delete(ctx context.Context, tenantID string) error {
	if err := c.api.Delete(ctx, "/tenants/"+url.PathEscape(tenantID), nil); err != nil {
		if errors.Is(err, apiclient.ErrNotFound) {
			return errors.Join(ErrTenantNotFound, err)
		}
		return fmt.Errorf("delete tenant: %w", err)
	}
	return nil
}

// UpdateStatus transitions a tenant to a new lifecycle state.
func (c *Client) UpdateStatus(ctx context.Context, tenantID string, status TenantStatus, reason string) (*Tenant, error) {
	body := map[string]string{"status": string(status)}
	if reason != "" {
		body["reason"] = reason
	}

	var tenant Tenant
	if err := c.api.Patch(ctx, "/tenants/"+url.PathEscape(tenantID)+"/status", body, &tenant); err != nil {
		if errors.Is(err, apiclient.ErrNotFound) {
			return nil, errors.Join(ErrTenantNotFound, err)
		}
		return nil, fmt.Errorf("update tenant status: %w", err)
	}
	return &tenant, nil
}

// SSOConfig fetches a tenant's single sign-on configuration.
func (c *Client) SSOConfig(ctx context.Context, tenantID string) (*SSOConfig, error) {
	var cfg SSOConfig
	if err := c.api.Get(ctx, "/tenants/"+url.PathEscape(tenantID)+"/sso", nil, &cfg); err != nil {
		if errors.Is(err, apiclient.ErrNotFound) {
			return nil, errors.Join(ErrSSONotConfigured, err)
		}
		return nil, fmt.Errorf("get sso config: %w", err)
	}
	return &cfg, nil
}

// UpdateSSOConfig replaces a tenant's single sign-on configuration.
func (c *Client) UpdateSSOConfig(ctx context.Context, tenantID string, req UpdateSSOConfigRequest) (*SSOConfig, error) {
	var cfg SSOConfig
	if err := c.api.Put(ctx, "/tenants/"+url.PathEscape(tenantID)+"/sso", req, &cfg); err != nil {
		return nil, fmt.Errorf("update sso config: %w", err)
	}
	return &cfg, nil
}

// DeleteSSOConfig removes a tenant's single sign-on configuration,
// reverting the tenant to local authentication.
func (c *Client) DeleteSSOConfig(ctx context.Context, tenantID string) error {
	if err := c.api.Delete(ctx, "/tenants/"+url.PathEscape(tenantID)+"/sso", nil); err != nil {
		if errors.Is(err, apiclient.ErrNotFound) {
			return errors.Join(ErrSSONotConfigured, err)
		}
		return fmt.Errorf("delete sso config: %w", err)
	}
	return nil
}

// TestSSOConnection verifies a tenant's SSO configuration against the
// provider without changing anything.
func (c *Client) TestSSOConnection(ctx context.Context, tenantID string) (*SSOTestResult, error) {
	var result SSOTestResult
	if err := c.api.Post(ctx, "/tenants/"+url.PathEscape(tenantID)+"/sso/test", nil, &result); err != nil {
		return nil, fmt.Errorf("test sso connection: %w", err)
	}
	return &result, nil
}

// TriggerSSOSync starts a directory sync run for the tenant.
func (c *Client) TriggerSSOSync(ctx context.Context, tenantID string) (*SSOSyncResult, error) {
	var result SSOSyncResult
	if err := c.api.Post(ctx, "/tenants/"+url.PathEscape(tenantID)+"/sso/sync", nil, &result); err != nil {
		return nil, fmt.Errorf("trigger sso sync: %w", err)
	}
	return &result, nil
}
