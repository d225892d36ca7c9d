package tools

import (
	"fmt"
	"math"
	"strconv"
)

// optionFlag maps one recognized key of a tool's free-form option map to its
// command-line flag. Bare flags are emitted without a value when the entry is
// truthy; value flags are emitted as a flag/value token pair.
type optionFlag struct {
	key  string
	flag string
	bare bool
}

// appendOptions appends recognized option-map entries to cmd, in table order.
// Unrecognized keys are silently ignored for compatibility with free-form
// MCP clients; nil and empty-string values suppress their flag.
func appendOptions(cmd []string, opts map[string]any, table []optionFlag) []string {
	for _, of := range table {
		v, ok := opts[of.key]
		if !ok || v == nil {
			continue
		}
		if of.bare {
			if truthy(v) {
				cmd = append(cmd, of.flag)
			}
			continue
		}
		if s, isStr := v.(string); isStr && s == "" {
			continue
		}
		cmd = append(cmd, of.flag, stringify(v))
	}
	return cmd
}

// truthy mirrors the loose boolean interpretation of option values coming in
// from JSON arguments.
func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case float64:
		return t != 0
	default:
		return true
	}
}

// stringify renders an option value as a command-line token. JSON numbers
// arrive as float64; integral values must not grow a ".0" suffix.
func stringify(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		if t == math.Trunc(t) {
			return strconv.FormatInt(int64(t), 10)
		}
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprintf("%v", t)
	}
}
