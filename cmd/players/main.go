package main

import "github.com/mcoot/players/internal/cli"

func main() {
	cli.Execute()
}
