package main

import "github.com/pseudocodeus/csvprof/cmd"

func main() {
	cmd.Execute()
}
