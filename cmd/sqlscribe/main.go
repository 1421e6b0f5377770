package main

import "github.com/nhath/sqlscribe/internal/cli"

func main() {
	cli.Execute()
}
