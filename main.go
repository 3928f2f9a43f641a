package main

import "github.com/statcardhq/statcard/cmd"

func main() {
	cmd.Execute()
}
