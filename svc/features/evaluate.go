package features

import (
	"errors"
	"fmt"
	"hash/fnv"
	"slices"
	"strings"
)

// EvaluateLocal evaluates a flag definition against a context without a
// server round-trip, e.g. over flags fetched once and cached. Rule order
// matters: the first enabled rule that matches wins. With no matching
// rule the flag's own Enabled switch and DefaultValue apply.
func EvaluateLocal(flag Flag, evalCtx Context) (Evaluation, error) {
	if !flag.Enabled {
		return Evaluation{
			Key:    flag.Key,
			Value:  flag.DefaultValue,
			Reason: "flag_disabled",
		}, nil
	}

	for _, rule := range flag.TargetingRules {
		if !rule.Enabled {
			continue
		}
		matched, err := matchRule(rule, evalCtx)
		if err != nil {
			return Evaluation{}, err
		}
		if matched {
			return Evaluation{
				Key:     flag.Key,
				Enabled: true,
				Value:   flag.DefaultValue,
				Reason:  "rule_match",
				RuleID:  rule.ID,
			}, nil
		}
	}

	if len(flag.TargetingRules) > 0 {
		return Evaluation{
			Key:    flag.Key,
			Value:  flag.DefaultValue,
			Reason: "no_rule_match",
		}, nil
	}

	return Evaluation{
		Key:     flag.Key,
		Enabled: true,
		Value:   flag.DefaultValue,
		Reason:  "flag_enabled",
	}, nil
}

func matchRule(rule TargetingRule, evalCtx Context) (bool, error) {
	// Percentage rules bucket on the user ID, not on an attribute value.
	if rule.Operator == OpPercentage {
		return matchPercentage(rule, evalCtx.UserID)
	}

	attr, ok := contextAttribute(evalCtx, rule.Attribute)
	if !ok {
		return false, nil
	}

	switch rule.Operator {
	case OpEquals:
		return attr == fmt.Sprint(rule.Value), nil
	case OpNotEquals:
		return attr != fmt.Sprint(rule.Value), nil
	case OpContains:
		return strings.Contains(attr, fmt.Sprint(rule.Value)), nil
	case OpNotContains:
		return !strings.Contains(attr, fmt.Sprint(rule.Value)), nil
	case OpStartsWith:
		return strings.HasPrefix(attr, fmt.Sprint(rule.Value)), nil
	case OpEndsWith:
		return strings.HasSuffix(attr, fmt.Sprint(rule.Value)), nil
	case OpIn:
		values, err := ruleValues(rule)
		if err != nil {
			return false, err
		}
		return slices.Contains(values, attr), nil
	case OpNotIn:
		values, err := ruleValues(rule)
		if err != nil {
			return false, err
		}
		return !slices.Contains(values, attr), nil
	default:
		return false, errors.Join(ErrInvalidRule, fmt.Errorf("unknown operator %q", rule.Operator))
	}
}

// matchPercentage buckets the user into 0..99 by FNV-1a hash so a given
// user lands in the same bucket on every evaluation.
func matchPercentage(rule TargetingRule, userID string) (bool, error) {
	percentage, ok := numericValue(rule.Value)
	if !ok || percentage < 0 || percentage > 100 {
		return false, errors.Join(ErrInvalidRule, fmt.Errorf("percentage value %v out of range", rule.Value))
	}
	if percentage == 0 || userID == "" {
		return false, nil
	}
	if percentage == 100 {
		return true, nil
	}

	h := fnv.New32a()
	h.Write([]byte(userID))
	return int(h.Sum32()%100) < percentage, nil
}

func contextAttribute(evalCtx Context, name string) (string, bool) {
	switch name {
	case "user_id":
		return evalCtx.UserID, evalCtx.UserID != ""
	case "email":
		return evalCtx.Email, evalCtx.Email != ""
	case "tenant_id":
		return evalCtx.TenantID, evalCtx.TenantID != ""
	case "roles":
		// Roles match as a joined list so contains/in operators can hit
		// individual entries.
		if len(evalCtx.Roles) == 0 {
			return "", false
		}
		return strings.Join(evalCtx.Roles, ","), true
	default:
		v, ok := evalCtx.Attributes[name]
		if !ok {
			return "", false
		}
		return fmt.Sprint(v), true
	}
}

func ruleValues(rule TargetingRule) ([]string, error) {
	switch v := rule.Value.(type) {
	case []string:
		return v, nil
	case []any:
		out := make([]string, len(v))
		for i, item := range v {
			out[i] = fmt.Sprint(item)
		}
		return out, nil
	default:
		return nil, errors.Join(ErrInvalidRule, fmt.Errorf("operator %q needs a list value", rule.Operator))
	}
}

func numericValue(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	default:
		return 0, false
	}
}
