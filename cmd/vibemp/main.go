package main

import (
	"github.com/maxgeorg99/vibe-multiplayer-server/internal/cli"
)

func main() {
	cli.Execute()
}
