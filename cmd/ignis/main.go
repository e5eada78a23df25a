// Command ignis is the terminal client for the health tracker.
package main

import "github.com/ignishealth/ignis/internal/cli"

func main() {
	cli.Execute()
}
