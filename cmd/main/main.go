package main

import "siege-companion/cmd"

func main() {
	cmd.Execute()
}
