package main

import "github.com/bneiser/timetrack/cmd"

func main() {
	cmd.Execute()
}
