package main

import "github.com/mindful-dev/mindful/internal/cli"

func main() {
	cli.Execute()
}
