package main

import (
	"fmt"
	"os"

	"vectap/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "vectap: %v\n", err)
		os.Exit(1)
	}
}
