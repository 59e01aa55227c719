package imgapi

import (
	"encoding/json"
	"strconv"
	"strings"
)

// StringMap decodes a JSON object whose values may be strings, booleans, or
// numbers into string values. IMGAPI manifests in the wild mix these freely
// in tag maps. Null, array, and object values are dropped.
type StringMap map[string]string

func (m *StringMap) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	out := make(StringMap, len(raw))
	for key, value := range raw {
		var s string
		if err := json.Unmarshal(value, &s); err == nil {
			out[key] = s
			continue
		}
		var b bool
		if err := json.Unmarshal(value, &b); err == nil {
			out[key] = strconv.FormatBool(b)
			continue
		}
		var n json.Number
		if err := json.Unmarshal(value, &n); err == nil {
			out[key] = n.String()
		}
	}
	*m = out
	return nil
}

// BoolMap decodes a JSON object whose values may be booleans or boolean-like
// strings ("true"/"false", any case) into booleans. Other values are dropped.
type BoolMap map[string]bool

func (m *BoolMap) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	out := make(BoolMap, len(raw))
	for key, value := range raw {
		var b bool
		if err := json.Unmarshal(value, &b); err == nil {
			out[key] = b
			continue
		}
		var s string
		if err := json.Unmarshal(value, &s); err == nil {
			switch strings.ToLower(s) {
			case "true":
				out[key] = true
			case "false":
				out[key] = false
			}
		}
	}
	*m = out
	return nil
}
