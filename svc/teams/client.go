package teams

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/platformkit/platformkit/pkg/apiclient"
)

// Client talks to the platform team service.
type Client struct {
	api *apiclient.Client
}

// NewClient wraps the shared API client with team service calls.
func NewClient(api *apiclient.Client) *Client {
	return &Client{api: api}
}

// List returns a page of the tenant's teams.
func (c *Client) List(ctx context.Context, params apiclient.ListParams) (*ListResponse, error) {
	var resp ListResponse
	if err := c.api.Get(ctx, "/teams", params.Query(), &resp); err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	return &resp, nil
}

// Tree returns the tenant's teams as nested trees, rooted at top-level
// teams.
func (c *Client) Tree(ctx context.Context) ([]Tree, error) {
	var resp treeResponse
	if err := c.api.Get(ctx, "/teams/tree", nil, &resp); err != nil {
		return nil, fmt.Errorf("team tree: %w", err)
	}
	return resp.Data, nil
}

// Get fetches a team by ID.
func (c *Client) Get(ctx context.Context, teamID string) (*Team, error) {
	var team Team
	if err := c.api.Get(ctx, "/teams/"+url.PathEscape(teamID), nil, &team); err != nil {
		if errors.Is(err, apiclient.ErrNotFound) {
			return nil, errors.Join(ErrTeamNotFound, err)
		}
		return nil, fmt.Errorf("get team: %w", err)
	}
	return &team, nil
}

// Create creates a team, nested under ParentID when set.
func (c *Client) Create(ctx context.Context, req CreateTeamRequest) (*Team, error) {
	var team Team
	if err := c.api.Post(ctx, "/teams", req, &team); err != nil {
		return nil, fmt.Errorf("create team: %w", err)
	}
	return &team, nil
}

// Update applies a partial update to a team.
func (c *Client) Update(ctx context.Context, teamID string, req UpdateTeamRequest) (*Team, error) {
	var team Team
	if err := c.api.Put(ctx, "/teams/"+url.PathEscape(teamID), req, &team); err != nil {
		if errors.Is(err, apiclient.ErrNotFound) {
			return nil, errors.Join(ErrTeamNotFound, err)
		}
		return nil, fmt.Errorf("update team: %w", err)
	}
	return &team, nil
}

// Delete removes a team. With force, members and subteams are detached
// first; without it the server rejects deletion of non-empty teams.
func (c *Client) Delete(ctx context.Context, teamID string, force bool) error {
	path := "/teams/" + url.PathEscape(teamID)
	if force {
		path += "?force=true"
	}
	if err := c.api.Delete(ctx, path, nil); err != nil {
		if errors.Is(err, apiclient.ErrNotFound) {
			return errors.Join(ErrTeamNotFound, err)
		}
		return fmt.Errorf("delete team: %w", err)
	}
	return nil
}

// Move reparents a team. An empty newParentID moves it to the top level.
func (c *Client) Move(ctx context.Context, teamID, newParentID string) (*Team, error) {
	var team Team
	body := map[string]string{"parent_id": newParentID}
	if err := c.api.Post(ctx, "/teams/"+url.PathEscape(teamID)+"/move", body, &team); err != nil {
		if errors.Is(err, apiclient.ErrNotFound) {
			return nil, errors.Join(ErrTeamNotFound, err)
		}
		return nil, fmt.Errorf("move team: %w", err)
	}
	return &team, nil
}

// ListMembers returns a page of the team's members.
func (c *Client) ListMembers(ctx context.Context, teamID string, params apiclient.ListParams) (*MembersResponse, error) {
	var resp MembersResponse
	path := "/teams/" + url.PathEscape(teamID) + "/members"
	if err := c.api.Get(ctx, path, params.Query(), &resp); err != nil {
		if errors.Is(err, apiclient.ErrNotFound) {
			return nil, errors.Join(ErrTeamNotFound, err)
		}
		return nil, fmt.Errorf("list members: %w", err)
	}
	return &resp, nil
}

// AddMember adds a user to a team.
func (c *Client) AddMember(ctx context.Context, teamID string, req AddMemberRequest) (*Member, error) {
	var member Member
	path := "/teams/" + url.PathEscape(teamID) + "/members"
	if err := c.api.Post(ctx, path, req, &member); err != nil {
		if errors.Is(err, apiclient.ErrConflict) {
			return nil, errors.Join(ErrAlreadyMember, err)
		}
		return nil, fmt.Errorf("add member: %w", err)
	}
	return &member, nil
}

// UpdateMember changes a member's role within the team.
func (c *Client) UpdateMember(ctx context.Context, teamID, userID string, role MemberRole) (*Member, error) {
	var member Member
	body := map[string]string{"role": string(role)}
	path := "/teams/" + url.PathEscape(teamID) + "/members/" + url.PathEscape(userID)
	if err := c.api.Put(ctx, path, body, &member); err != nil {
		if errors.Is(err, apiclient.ErrNotFound) {
			return nil, errors.Join(ErrMemberNotFound, err)
		}
		return nil, fmt.Errorf("update member: %w", err)
	}
	return &member, nil
}

// RemoveMember removes a user from a team.
func (c *Client) RemoveMember(ctx context.Context, teamID, userID string) error {
	path := "/teams/" + url.PathEscape(teamID) + "/members/" + url.PathEscape(userID)
	if err := c.api.Delete(ctx, path, nil); err != nil {
		if errors.Is(err, apiclient.ErrNotFound) {
			return errors.Join(ErrMemberNotFound, err)
		}
		return fmt.Errorf("remove member: %w", err)
	}
	return nil
}
