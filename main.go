package main

import "github.com/notargets/conslaw/cmd"

func main() {
	cmd.Execute()
}
