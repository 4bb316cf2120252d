package main

import (
	"os"

	"github.com/rcarmo/go-xargs/pkg/applets/xargs"
	"github.com/rcarmo/go-xargs/pkg/core"
)

func main() {
	stdio := core.DefaultStdio()
	os.Exit(xargs.Run(stdio, os.Args[1:]))
}
