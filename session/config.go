package session

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/ggoodman/scorm-go/cmi"
	"github.com/invopop/jsonschema"
	"github.com/joeshaw/envdecode"
)

// Toggle is an optional boolean setting. The zero value is unset, which
// every setting treats as enabled.
type Toggle int8

const (
	ToggleUnset Toggle = iota
	ToggleOn
	ToggleOff
)

// ToggleOf converts b to an explicit Toggle.
func ToggleOf(b bool) Toggle {
	if b {
		return ToggleOn
	}
	return ToggleOff
}

// Enabled reports the effective value: only an explicit off disables.
func (t Toggle) Enabled() bool { return t != ToggleOff }

// Decode implements envdecode.Decoder.
func (t *Toggle) Decode(s string) error {
	if s == "" {
		*t = ToggleUnset
		return nil
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return fmt.Errorf("invalid toggle %q: %w", s, err)
	}
	*t = ToggleOf(b)
	return nil
}

func (t *Toggle) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*t = ToggleUnset
		return nil
	}
	var b bool
	if err := json.Unmarshal(data, &b); err != nil {
		return fmt.Errorf("toggle must be a boolean: %w", err)
	}
	*t = ToggleOf(b)
	return nil
}

func (t Toggle) MarshalJSON() ([]byte, error) {
	if t == ToggleUnset {
		return []byte("null"), nil
	}
	return json.Marshal(t.Enabled())
}

// JSONSchema describes a Toggle as a plain boolean.
func (Toggle) JSONSchema() *jsonschema.Schema {
	return &jsonschema.Schema{Type: "boolean"}
}

// Config is the configuration surface of a session. Every field is
// optional. It has the shape of the object passed to configure() by
// content scripts and can also be read from the environment.
type Config struct {
	// Version pins the runtime version; when empty it is inferred during
	// discovery. ENV: SCORM_VERSION
	Version cmi.Version `env:"SCORM_VERSION" json:"version,omitempty" jsonschema:"enum=1.2,enum=2004,description=Runtime API version; inferred when omitted"`

	// Debug enables the debug log. ENV: SCORM_DEBUG
	Debug Toggle `env:"SCORM_DEBUG" json:"debug,omitempty" jsonschema:"description=Emit debug log records"`

	// HandleExitMode writes an exit mode on terminate. ENV: SCORM_HANDLE_EXIT_MODE
	HandleExitMode Toggle `env:"SCORM_HANDLE_EXIT_MODE" json:"handleExitMode,omitempty" jsonschema:"description=Set the exit element automatically on terminate"`

	// HandleCompletionStatus moves fresh attempts to incomplete on
	// initialize. ENV: SCORM_HANDLE_COMPLETION_STATUS
	HandleCompletionStatus Toggle `env:"SCORM_HANDLE_COMPLETION_STATUS" json:"handleCompletionStatus,omitempty" jsonschema:"description=Mark new attempts incomplete on initialize"`
}

// ConfigFromEnv reads a Config from SCORM_* environment variables. Unset
// variables leave their field unset.
func ConfigFromEnv() (Config, error) {
	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return Config{}, fmt.Errorf("decode session config from env: %w", err)
	}
	return cfg, nil
}

// ConfigFromJSON decodes the configure() object. Unknown keys are ignored,
// as content scripts routinely pass extra options.
func ConfigFromJSON(data []byte) (Config, error) {
	var cfg Config
	if len(bytes.TrimSpace(data)) == 0 {
		return cfg, nil
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("decode session config: %w", err)
	}
	return cfg, nil
}

// ConfigSchema returns the JSON schema of the configure() object.
func ConfigSchema() *jsonschema.Schema {
	r := &jsonschema.Reflector{
		DoNotReference:            true,
		ExpandedStruct:            true,
		AllowAdditionalProperties: true,
	}
	return r.Reflect(new(Config))
}
