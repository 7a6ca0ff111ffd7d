package features_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/platformkit/platformkit/svc/features"
)

func flagWithRule(rule features.TargetingRule) features.Flag {
	return features.Flag{
		Key:            "test-flag",
		Enabled:        true,
		DefaultValue:   true,
		TargetingRules: []features.TargetingRule{rule},
	}
}

func TestEvaluateLocalDisabledFlag(t *testing.T) {
	t.Parallel()

	result, err := features.EvaluateLocal(features.Flag{Key: "off", Enabled: false, DefaultValue: false}, features.Context{})
	require.NoError(t, err)
	assert.False(t, result.Enabled)
	assert.Equal(t, "flag_disabled", result.Reason)
}

func TestEvaluateLocalNoRules(t *testing.T) {
	t.Parallel()

	result, err := features.EvaluateLocal(features.Flag{Key: "on", Enabled: true, DefaultValue: "blue"}, features.Context{})
	require.NoError(t, err)
	assert.True(t, result.Enabled)
	assert.Equal(t, "flag_enabled", result.Reason)
	assert.Equal(t, "blue", result.Value)
}

func TestEvaluateLocalOperators(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		rule    features.TargetingRule
		evalCtx features.Context
		want    bool
	}{
		{
			"equals match",
			features.TargetingRule{ID: "r1", Attribute: "tenant_id", Operator: features.OpEquals, Value: "t1", Enabled: true},
			features.Context{TenantID: "t1"},
			true,
		},
		{
			"equals mismatch",
			features.TargetingRule{ID: "r1", Attribute: "tenant_id", Operator: features.OpEquals, Value: "t1", Enabled: true},
			features.Context{TenantID: "t2"},
			false,
		},
		{
			"ends_with on email",
			features.TargetingRule{ID: "r2", Attribute: "email", Operator: features.OpEndsWith, Value: "@example.com", Enabled: true},
			features.Context{Email: "alice@example.com"},
			true,
		},
		{
			"starts_with mismatch",
			features.TargetingRule{ID: "r3", Attribute: "email", Operator: features.OpStartsWith, Value: "admin", Enabled: true},
			features.Context{Email: "alice@example.com"},
			false,
		},
		{
			"in list",
			features.TargetingRule{ID: "r4", Attribute: "tenant_id", Operator: features.OpIn, Value: []any{"t1", "t2"}, Enabled: true},
			features.Context{TenantID: "t2"},
			true,
		},
		{
			"not_in list",
			features.TargetingRule{ID: "r5", Attribute: "tenant_id", Operator: features.OpNotIn, Value: []any{"t1"}, Enabled: true},
			features.Context{TenantID: "t9"},
			true,
		},
		{
			"contains on roles",
			features.TargetingRule{ID: "r6", Attribute: "roles", Operator: features.OpContains, Value: "admin", Enabled: true},
			features.Context{Roles: []string{"admin", "user"}},
			true,
		},
		{
			"custom attribute",
			features.TargetingRule{ID: "r7", Attribute: "plan", Operator: features.OpEquals, Value: "enterprise", Enabled: true},
			features.Context{Attributes: map[string]any{"plan": "enterprise"}},
			true,
		},
		{
			"missing attribute never matches",
			features.TargetingRule{ID: "r8", Attribute: "plan", Operator: features.OpEquals, Value: "enterprise", Enabled: true},
			features.Context{},
			false,
		},
		{
			"disabled rule skipped",
			features.TargetingRule{ID: "r9", Attribute: "tenant_id", Operator: features.OpEquals, Value: "t1", Enabled: false},
			features.Context{TenantID: "t1"},
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			result, err := features.EvaluateLocal(flagWithRule(tt.rule), tt.evalCtx)
			require.NoError(t, err)
			assert.Equal(t, tt.want, result.Enabled)
			if tt.want {
				assert.Equal(t, "rule_match", result.Reason)
				assert.Equal(t, tt.rule.ID, result.RuleID)
			} else {
				assert.Equal(t, "no_rule_match", result.Reason)
			}
		})
	}
}

func TestEvaluateLocalPercentage(t *testing.T) {
	t.Parallel()

	rule := func(pct int) features.TargetingRule {
		return features.TargetingRule{ID: "pct", Attribute: "user_id", Operator: features.OpPercentage, Value: pct, Enabled: true}
	}

	t.Run("zero percent is off for everyone", func(t *testing.T) {
		t.Parallel()
		result, err := features.EvaluateLocal(flagWithRule(rule(0)), features.Context{UserID: "u1"})
		require.NoError(t, err)
		assert.False(t, result.Enabled)
	})

	t.Run("hundred percent is on for everyone", func(t *testing.T) {
		t.Parallel()
		result, err := features.EvaluateLocal(flagWithRule(rule(100)), features.Context{UserID: "u1"})
		require.NoError(t, err)
		assert.True(t, result.Enabled)
	})

	t.Run("no user id never matches", func(t *testing.T) {
		t.Parallel()
		result, err := features.EvaluateLocal(flagWithRule(rule(50)), features.Context{})
		require.NoError(t, err)
		assert.False(t, result.Enabled)
	})

	t.Run("deterministic per user", func(t *testing.T) {
		t.Parallel()
		first, err := features.EvaluateLocal(flagWithRule(rule(50)), features.Context{UserID: "stable-user"})
		require.NoError(t, err)
		for range 10 {
			again, err := features.EvaluateLocal(flagWithRule(rule(50)), features.Context{UserID: "stable-user"})
			require.NoError(t, err)
			assert.Equal(t, first.Enabled, again.Enabled)
		}
	})

	t.Run("rollout fraction is plausible", func(t *testing.T) {
		t.Parallel()
		enabled := 0
		for i := range 1000 {
			result, err := features.EvaluateLocal(flagWithRule(rule(30)), features.Context{
				UserID: fmt.Sprintf("user-%d", i),
			})
			require.NoError(t, err)
			if result.Enabled {
				enabled++
			}
		}
		assert.InDelta(t, 300, enabled, 100)
	})

	t.Run("out of range percentage", func(t *testing.T) {
		t.Parallel()
		_, err := features.EvaluateLocal(flagWithRule(rule(150)), features.Context{UserID: "u1"})
		assert.ErrorIs(t, err, features.ErrInvalidRule)
	})
}

func TestEvaluateLocalUnknownOperator(t *testing.T) {
	t.Parallel()

	_, err := features.EvaluateLocal(flagWithRule(features.TargetingRule{
		ID:        "bad",
		Attribute: "email",
		Operator:  "matches_regex",
		Enabled:   true,
	}), features.Context{Email: "a@b.com"})
	assert.ErrorIs(t, err, features.ErrInvalidRule)
}
