package main

import (
	"fmt"
	"os"

	"github.com/viant/umldiff/cmd"
)

func main() {
	if err := cmd.New(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
