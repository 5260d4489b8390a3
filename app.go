package main

import "gardener/cmd"

func main() {
	cmd.Run()
}
