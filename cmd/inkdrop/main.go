package main

import (
	"os"

	"github.com/hashicorp-forge/inkdrop/internal/cmd"
)

func main() {
	os.Exit(cmd.Main(os.Args))
}
