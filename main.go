package main

import "github.com/mcmeta/mcmeta/cmd"

// set by goreleaser
var version = "dev"

func main() {
	cmd.Version = version
	cmd.Execute()
}
