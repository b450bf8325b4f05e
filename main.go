package main

import "github.com/they4kman/voxsweep/cmd"

func main() {
	cmd.Execute()
}
