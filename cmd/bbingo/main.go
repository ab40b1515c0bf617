package main

import (
	"github.com/gspiers/buzzbingo/internal/cli"
)

func main() {
	cli.Execute()
}
