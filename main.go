package main

import (
	"fmt"
	"os"

	"fjacquet/ccstmt-csv/cmd/root"
	"fjacquet/ccstmt-csv/internal/config"
)

func main() {
	// .env must be loaded before the config layer reads the environment
	config.LoadEnv()

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
