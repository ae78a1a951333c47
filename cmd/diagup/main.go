package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	err := Execute()
	if err == nil {
		return
	}
	// An impossible layout already printed "<invalid input>"; its exit
	// code is part of the CLI contract.
	if errors.Is(err, errInvalidLayout) {
		os.Exit(1)
	}
	fmt.Fprintln(os.Stderr, "Error:", err)
	os.Exit(2)
}
