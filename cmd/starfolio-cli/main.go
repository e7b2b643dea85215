package main

import "starfolio/cmd/starfolio-cli/cmd"

func main() {
	cmd.Execute()
}
