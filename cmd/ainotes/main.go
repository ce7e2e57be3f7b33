// Command ainotes runs the notes web app and its maintenance tasks.
//
// Usage:
//
//	ainotes [serve]            start the HTTP server (default)
//	ainotes migrate [up|status]
//	ainotes models             list Gemini models usable for summaries
//	ainotes version
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
