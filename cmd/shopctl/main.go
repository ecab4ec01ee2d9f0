// Package main provides the shopctl CLI, the terminal admin console for a
// Shopfront store.
package main

import "os"

func main() {
	os.Exit(Execute())
}
