package main

import (
	"os"

	_ "github.com/joho/godotenv/autoload"

	"github.com/felixgeelhaar/speclint/internal/infrastructure/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(cli.ExitCode(err))
	}
}
