package main

import (
	"errors"
	"fmt"
	"github.com/baepo-cloud/baepo-netinfo/internal/cmd"
	_ "github.com/joho/godotenv/autoload"
	"os"
)

func main() {
	if err := cmd.Execute(); err != nil {
		if errors.Is(err, cmd.ErrNotFound) {
			os.Exit(1)
		}
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}
}
