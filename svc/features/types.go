package features

import (
	"time"

	"github.com/platformkit/platformkit/pkg/apiclient"
)

// RuleOperator names a targeting rule comparison.
type RuleOperator string

const (
	OpEquals      RuleOperator = "equals"
	OpNotEquals   RuleOperator = "not_equals"
	OpContains    RuleOperator = "contains"
	OpNotContains RuleOperator = "not_contains"
	OpStartsWith  RuleOperator = "starts_with"
	OpEndsWith    RuleOperator = "ends_with"
	OpIn          RuleOperator = "in"
	OpNotIn       RuleOperator = "not_in"
	OpPercentage  RuleOperator = "percentage"
)

// TargetingRule narrows a flag to contexts whose attribute satisfies the
// operator.
type TargetingRule struct {
	ID        string       `json:"id"`
	Attribute string       `json:"attribute"`
	Operator  RuleOperator `json:"operator"`
	Value     any          `json:"value"`
	Enabled   bool         `json:"enabled"`
}

// Flag is a feature flag definition.
type Flag struct {
	ID             string          `json:"id"`
	Key            string          `json:"key"`
	Name           string          `json:"name"`
	Description    string          `json:"description,omitempty"`
	Enabled        bool            `json:"enabled"`
	DefaultValue   any             `json:"default_value"`
	TargetingRules []TargetingRule `json:"targeting_rules,omitempty"`
	Tags           []string        `json:"tags,omitempty"`
	Metadata       map[string]any  `json:"metadata,omitempty"`
	CreatedAt      time.Time       `json:"created_at,omitzero"`
	UpdatedAt      time.Time       `json:"updated_at,omitzero"`
}

// Context carries the principal attributes flags are evaluated against.
// Attributes holds free-form keys addressable from targeting rules; the
// named fields are addressable as "user_id", "email", "tenant_id", and
// "roles".
type Context struct {
	UserID     string         `json:"user_id,omitempty"`
	Email      string         `json:"email,omitempty"`
	TenantID   string         `json:"tenant_id,omitempty"`
	Roles      []string       `json:"roles,omitempty"`
	Attributes map[string]any `json:"attributes,omitempty"`
}

// Evaluation is the result of evaluating one flag against a context.
type Evaluation struct {
	Key     string `json:"key"`
	Enabled bool   `json:"enabled"`
	Value   any    `json:"value"`
	Reason  string `json:"reason"`
	RuleID  string `json:"rule_id,omitempty"`
}

// ListResponse is a paginated page of flags.
type ListResponse struct {
	Data       []Flag               `json:"data"`
	Pagination apiclient.Pagination `json:"pagination"`
}
