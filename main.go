package main

import "locharvest/internal/cli"

func main() {
	cli.Execute()
}
