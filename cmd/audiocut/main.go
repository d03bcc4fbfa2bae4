// Package main provides the audiocut entry point.
package main

import "github.com/audiocut/audiocut/internal/cli"

func main() {
	cli.Execute()
}
