package main

import (
	"os"

	"ro-start/internal/commands"
)

func main() {
	os.Exit(commands.Execute(commands.DefaultApp(), os.Args[1:]))
}
