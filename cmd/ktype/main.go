package main

import (
	"fmt"
	"os"

	"github.com/eliquious/thermocouple/internal/cmd"
)

func main() {
	err := cmd.NewRootCmd().Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
