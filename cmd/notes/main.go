// Command notes keeps a short ordered list of text notes on local storage.
package main

import "github.com/mesh-intelligence/notes/internal/cli"

func main() {
	cli.Execute()
}
