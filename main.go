package main

import "github.com/hyhAsma/termux-api-tools-mcp-server/cmd"

func main() {
	cmd.Execute()
}
