package cmi

import (
	"encoding/json"
	"fmt"
)

// Version identifies a runtime API generation. The zero value means no
// version has been selected yet.
type Version string

const (
	Version12   Version = "1.2"
	Version2004 Version = "2004"
)

// Versions lists the supported versions in discovery preference order.
var Versions = []Version{Version2004, Version12}

// ParseVersion validates s as a supported version. The empty string parses
// to the zero Version.
func ParseVersion(s string) (Version, error) {
	switch v := Version(s); v {
	case "", Version12, Version2004:
		return v, nil
	default:
		return "", &UnsupportedVersionError{Version: s}
	}
}

// IsZero reports whether no version has been selected.
func (v Version) IsZero() bool { return v == "" }

// Valid reports whether v names a supported version.
func (v Version) Valid() bool { return v == Version12 || v == Version2004 }

func (v Version) String() string { return string(v) }

// Decode implements envdecode.Decoder so that environment intake rejects
// unknown versions.
func (v *Version) Decode(s string) error {
	parsed, err := ParseVersion(s)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// UnmarshalJSON accepts a JSON string or number ("2004" and 2004 are both
// seen in launch configurations).
func (v *Version) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return fmt.Errorf("version must be a string: %w", err)
		}
		s = n.String()
	}
	parsed, err := ParseVersion(s)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// UnsupportedVersionError is returned when a configured version is neither
// 1.2 nor 2004.
type UnsupportedVersionError struct {
	Version string
}

func (e *UnsupportedVersionError) Error() string {
	return fmt.Sprintf("unsupported runtime version %q", e.Version)
}
