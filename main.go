package main

import "github.com/cardbox-dev/cardbox/cmd"

func main() {
	cmd.Execute()
}
