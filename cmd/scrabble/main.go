package main

import "github.com/mcoot/palabras/internal/cli"

func main() {
	cli.Execute()
}
