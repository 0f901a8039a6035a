package main

import (
	"fete/cmd"

	"github.com/joho/godotenv"
)

func main() {
	// Optional .env for bridge tokens and access codes. Missing file is fine.
	_ = godotenv.Load()

	cmd.Execute()
}
