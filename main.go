package main

import "outlay/cmd"

func main() {
	cmd.Execute()
}
