package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// loadToolset reads and validates a YAML toolset manifest. Whether the listed
// tool names exist is checked at registration time, where the full registry
// is known.
func loadToolset(path string) (*toolset, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	ts := &toolset{}
	if err := yaml.Unmarshal(b, ts); err != nil {
		return nil, err
	}
	if ts.Name == "" {
		return nil, errors.New("toolset.name is required")
	}
	if len(ts.Tools) == 0 {
		return nil, errors.New("toolset lists no tools")
	}
	for i, name := range ts.Tools {
		if strings.TrimSpace(name) == "" {
			return nil, fmt.Errorf("tools[%d] is empty", i)
		}
	}
	return ts, nil
}
