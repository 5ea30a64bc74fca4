package interpreter

import (
	"fmt"
	"strconv"
)

// isTruthy implements spec.md §3's truthiness rule: nil and false are
// falsey, everything else — including 0 and "" — is truthy.
func isTruthy(v any) bool {
	if v == nil {
		return false
	}
	if b, ok := v.(bool); ok {
		return b
	}
	return true
}

// isEqual implements spec.md §3's equality rule: nil equals only nil,
// same-kind values compare by value (IEEE equality for numbers,
// code-point equality for strings), cross-kind is always false, and
// callables/instances compare by identity.
func isEqual(a, b any) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	switch av := a.(type) {
	case float64:
		bv, ok := b.(float64)
		return ok && av == bv
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	default:
		// Callables and *Instance compare by identity: two distinct
		// allocations are never equal even with identical contents.
		return a == b
	}
}

// stringify produces the canonical printed representation of a value.
func stringify(v any) string {
	switch val := v.(type) {
	case nil:
		return "nil"
	case bool:
		if val {
			return "true"
		}
		return "false"
	case float64:
		return formatNumber(val)
	case string:
		return val
	case Callable:
		return val.String()
	case *Instance:
		return val.String()
	default:
		return fmt.Sprintf("%v", val)
	}
}

// formatNumber renders a float64 as the shortest round-trippable decimal,
// dropping a trailing ".0" for integral values — strconv's 'f' format
// with precision -1 already produces "1" rather than "1.0" for an
// integral float, so no extra trimming is required.
func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
