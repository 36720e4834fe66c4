package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"stockvol/internal/cli"
	"stockvol/internal/logger"
)

func main() {
	// .env is optional and never overrides the real environment.
	_ = godotenv.Load()
	logger.Init()

	c := cli.NewCLI(cli.Options{})
	if err := c.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
