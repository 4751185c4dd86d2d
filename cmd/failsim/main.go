package main

import "github.com/ppiankov/failsim/internal/cli"

func main() {
	cli.Execute()
}
