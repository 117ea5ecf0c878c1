package main

import "github.com/dwhforge/dwhforge/cmd"

func main() {
	cmd.Execute()
}
