package main

import (
	"github.com/dyike/symplacheck/internal/cli"
)

func main() {
	cli.Run()
}
