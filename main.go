package main

import "github.com/RandomEggs/randomEggsTracker/cmd"

func main() {
	cmd.Execute()
}
