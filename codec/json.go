package codec

import (
	"encoding/json"
)

// JSON is the standard-library JSON codec.
//
// Model payloads are small structs (strategy, boundary list, fit stats), so
// JSON is stable and portable for them. Pick GoJSON when encode/decode shows
// up in profiles.
type JSON struct{}

// Marshal encodes the value to JSON.
func (JSON) Marshal(v any) ([]byte, error) { return json.Marshal(v) }

// Unmarshal decodes the JSON data into v.
func (JSON) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }

// Name returns the unique name of the codec ("json").
func (JSON) Name() string { return "json" }

// Default is the default codec used by the library.
//
// This affects newly written model files only; existing files are
// self-describing and are opened by selecting the codec by name.
var Default Codec = GoJSON{}
