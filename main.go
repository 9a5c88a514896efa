package main

import "github.com/relevant-community/pagerank/cmd"

func main() {
	cmd.Execute()
}
