package tools

import "github.com/mark3labs/mcp-go/mcp"

// optionsArg extracts a nested option-map argument. Absent or mistyped
// values yield nil, which every builder treats as "no options".
func optionsArg(req mcp.CallToolRequest, key string) map[string]any {
	v, ok := req.GetArguments()[key]
	if !ok {
		return nil
	}
	m, _ := v.(map[string]any)
	return m
}

// stringSliceArg extracts a string-array argument.
func stringSliceArg(req mcp.CallToolRequest, key string) []string {
	v, ok := req.GetArguments()[key]
	if !ok {
		return nil
	}
	raw, _ := v.([]any)
	out := make([]string, 0, len(raw))
	for _, e := range raw {
		out = append(out, stringify(e))
	}
	return out
}

// hasArg reports whether the caller supplied the argument at all, which is
// how optional numbers with meaningful zero values are told apart from
// omitted ones.
func hasArg(req mcp.CallToolRequest, key string) bool {
	_, ok := req.GetArguments()[key]
	return ok
}
