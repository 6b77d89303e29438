package main

import (
	"github.com/tebeka/atexit"

	"bytelit/pkg/cli"
)

func main() {
	atexit.Exit(cli.Execute())
}
