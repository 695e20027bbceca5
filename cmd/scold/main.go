package main

import "github.com/karolswdev/scoldme/cmd"

func main() {
	cmd.Execute()
}
