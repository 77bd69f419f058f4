package main

import "github.com/papapumpkin/holocron/cmd"

func main() {
	cmd.Execute()
}
