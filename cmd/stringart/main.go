// Command stringart computes a string-art thread path for a picture.
//
// Usage:
//
//	stringart tabu    [flags] IMAGE
//	stringart genetic [flags] IMAGE
//	stringart hybrid  [flags] IMAGE
//
// The pin sequence is printed to stdout; the rendered preview is written to
// --output (PNG) and, when asked, --svg.
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
