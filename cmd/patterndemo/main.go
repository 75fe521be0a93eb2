// Command patterndemo renders YAML scenes made of paint patterns.
//
// Usage:
//
//	patterndemo render scene.yaml -o out.png
//	patterndemo inspect scene.yaml
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "patterndemo:", err)
		os.Exit(1)
	}
}
