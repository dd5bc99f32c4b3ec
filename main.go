package main

import "demoshell/internal/cli"

func main() {
	cli.Execute()
}
