package main

import "eventify/cmd/eventify/cmd"

func main() {
	cmd.Execute()
}
