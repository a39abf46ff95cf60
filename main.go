package main

import (
	"os"

	"github.com/parolabs/parola/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
