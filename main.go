package main

import "github.com/mineprobs/mineprobs/cmd"

func main() {
	cmd.Execute()
}
