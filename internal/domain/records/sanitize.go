package records

import "strings"

// sanitizeValue applies the write-time rule for client-supplied fields:
// strings are trimmed and dropped when empty, empty sequences and nulls are
// dropped, every other value passes through unchanged.
func sanitizeValue(value any) (any, bool) {
	switch v := value.(type) {
	case nil:
		return nil, false
	case string:
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			return nil, false
		}
		return trimmed, true
	case []any:
		if len(v) == 0 {
			return nil, false
		}
		return v, true
	case []string:
		if len(v) == 0 {
			return nil, false
		}
		return v, true
	case []Record:
		if len(v) == 0 {
			return nil, false
		}
		return v, true
	default:
		return v, true
	}
}
