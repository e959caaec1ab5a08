package main

import (
	"fmt"
	"os"

	"github.com/weiawesome/library-id/internal/cli"
	"github.com/weiawesome/library-id/internal/version"
)

func main() {
	rootCmd := cli.RootCmd(version.String("isbnctl"))

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
