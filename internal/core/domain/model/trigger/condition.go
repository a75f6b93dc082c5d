package trigger

import (
	"fmt"
	"strconv"

	"fieldservice/internal/pkg/errs"
)

// Operator is a comparison applied by a condition clause.
type Operator string

const (
	OpEqual          Operator = "eq"
	OpNotEqual       Operator = "neq"
	OpIn             Operator = "in"
	OpGreaterOrEqual Operator = "gte"
	OpLessOrEqual    Operator = "lte"
)

// Validate checks whether the operator is one of the supported comparisons.
func (o Operator) Validate() error {
	switch o {
	case OpEqual, OpNotEqual, OpIn, OpGreaterOrEqual, OpLessOrEqual:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("operator",
			fmt.Errorf("%q is not a supported operator", string(o)))
	}
}

// Clause is a single field/operator/value predicate evaluated against the
// context of a domain event (e.g. {"newStatus", "eq", "Completed"}).
type Clause struct {
	Field string   `json:"field"`
	Op    Operator `json:"op"`
	Value any      `json:"value"`
}

// Validate checks the structural validity of the clause.
func (c Clause) Validate() error {
	if c.Field == "" {
		return errs.NewValueIsRequiredError("field")
	}
	if err := c.Op.Validate(); err != nil {
		return err
	}
	if c.Op == OpIn {
		if _, ok := asSlice(c.Value); !ok {
			return errs.NewValueIsInvalidErrorWithCause("value",
				fmt.Errorf("operator %q requires a list value", c.Op))
		}
	}
	return nil
}

// Matches evaluates the clause against an event context. A field absent from
// the context never matches.
func (c Clause) Matches(context map[string]any) bool {
	actual, ok := context[c.Field]
	if !ok {
		return false
	}

	switch c.Op {
	case OpEqual:
		return looseEqual(actual, c.Value)
	case OpNotEqual:
		return !looseEqual(actual, c.Value)
	case OpIn:
		values, ok := asSlice(c.Value)
		if !ok {
			return false
		}
		for _, v := range values {
			if looseEqual(actual, v) {
				return true
			}
		}
		return false
	case OpGreaterOrEqual:
		a, b, ok := asNumbers(actual, c.Value)
		return ok && a >= b
	case OpLessOrEqual:
		a, b, ok := asNumbers(actual, c.Value)
		return ok && a <= b
	default:
		return false
	}
}

// Condition is the conjunction of zero or more clauses. An empty condition
// matches every event of the trigger's type.
type Condition []Clause

// Validate checks every clause.
func (c Condition) Validate() error {
	for _, clause := range c {
		if err := clause.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Matches reports whether every clause matches the event context.
func (c Condition) Matches(context map[string]any) bool {
	for _, clause := range c {
		if !clause.Matches(context) {
			return false
		}
	}
	return true
}

// looseEqual compares two values, treating numeric types as equal when their
// values coincide. JSON round-trips turn ints into float64, so a strict
// comparison would spuriously fail after persistence.
func looseEqual(a, b any) bool {
	if na, nb, ok := asNumbers(a, b); ok {
		return na == nb
	}
	return fmt.Sprintf("%v", a) == fmt.Sprintf("%v", b)
}

func asNumbers(a, b any) (float64, float64, bool) {
	na, okA := asNumber(a)
	nb, okB := asNumber(b)
	return na, nb, okA && okB
}

func asNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	case string:
		f, err := strconv.ParseFloat(n, 64)
		return f, err == nil
	default:
		return 0, false
	}
}

func asSlice(v any) ([]any, bool) {
	switch s := v.(type) {
	case []any:
		return s, true
	case []string:
		out := make([]any, len(s))
		for i, item := range s {
			out[i] = item
		}
		return out, true
	default:
		return nil, false
	}
}
