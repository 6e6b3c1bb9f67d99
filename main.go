package main

import "deck-reconciler/cmd"

func main() {
	cmd.Execute()
}
