// Command csparse tokenizes and parses C#-family source code.
package main

import (
	"os"

	"github.com/d-rezzer/csharpparse/cmd/csparse/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
