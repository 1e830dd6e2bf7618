package main

import (
	"github.com/hoopgm/capcrash/internal/cli"
)

func main() {
	cli.Execute()
}
