// Command marketctl queries the energy intelligence core from the terminal,
// using the same wiring as the server.
package main

import (
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
