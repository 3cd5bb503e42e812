package main

import (
	"github.com/plasmap/plasmap/cmd"
)

func main() {
	cmd.Execute() // initialize cobra commands
}
