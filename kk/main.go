package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/joho/godotenv"

	"github.com/25F1002767MONUSAHU/KiranaKhata/cmd"
)

func main() {
	// optional .env for GEMINI_API_KEY; missing file is fine.
	_ = godotenv.Load()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
