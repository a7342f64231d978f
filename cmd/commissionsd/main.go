package main

import "github.com/dealsyte/commissions-engine/internal/cli"

func main() {
	cli.Execute()
}
