package main

import (
	"github.com/gostonefire/animdata/cmd/animdata/cmd"
)

func main() {
	cmd.Execute()
}
