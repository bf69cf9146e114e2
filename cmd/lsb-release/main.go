package main

import "lsb-release/internal/cli"

func main() {
	cli.Execute()
}
