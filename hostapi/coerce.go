package hostapi

import (
	"math"
	"strings"
)

// Truth is the logical outcome of a host call. Unknown is distinct from
// False: it means the host returned nothing at all.
type Truth int8

const (
	Unknown Truth = iota
	False
	True
)

// OK reports whether t is True. Unknown is not success.
func (t Truth) OK() bool { return t == True }

// Known reports whether the host produced a result.
func (t Truth) Known() bool { return t != Unknown }

func (t Truth) String() string {
	switch t {
	case True:
		return "true"
	case False:
		return "false"
	default:
		return "unknown"
	}
}

// Coerce normalises a host return value. Strings are true when they contain
// "true" or "1" (case-insensitive), numbers by truthiness, booleans as-is.
// Undefined is Unknown; null and every other kind are False.
func Coerce(v Value) Truth {
	switch v.kind {
	case KindString:
		s := strings.ToLower(v.str)
		return truth(strings.Contains(s, "true") || strings.Contains(s, "1"))
	case KindNumber:
		return truth(v.num != 0 && !math.IsNaN(v.num))
	case KindBool:
		return truth(v.b)
	case KindUndefined:
		return Unknown
	default:
		return False
	}
}

func truth(b bool) Truth {
	if b {
		return True
	}
	return False
}
