package main

import "offjournal/cmd/offjournal-cli/cmd"

func main() {
	cmd.Execute()
}
