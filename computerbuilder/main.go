// Command computerbuilder assembles computer configurations from the command
// line.
package main

import "github.com/sarchlab/computerbuilder/computerbuilder/cmd"

func main() {
	cmd.Execute()
}
