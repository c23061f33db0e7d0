package main

import (
	"github.com/sidkik/leetsync/cmd"
	"github.com/sidkik/leetsync/cmd/util"
)

func main() {
	defer util.HandlePanic()
	cmd.Execute()
}
