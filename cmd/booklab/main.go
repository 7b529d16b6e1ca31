package main

import (
	"os"

	"github.com/viant/booklab/internal/cli"
	"github.com/viant/booklab/model/command"
)

func main() {
	os.Exit(cli.Run(command.BookLab))
}
