package main

import "gigworks.com/gigworks/cmd"

func main() {
	cmd.Execute()
}
