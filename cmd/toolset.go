package cmd

// toolset is the YAML manifest restricting which device tools the server
// registers. An operator can hand an MCP client a read-only subset this way.
type toolset struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Tools       []string `yaml:"tools"`
}
