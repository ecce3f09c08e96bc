// ABOUTME: Main entry point for the Wholenote server
// ABOUTME: Hands control to the cobra command tree

package main

import "os"

func main() {
	if err := Execute(); err != nil {
		os.Exit(1)
	}
}
