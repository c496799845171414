package main

import (
	"numgen/cmd"
)

func main() {
	cmd.Execute()
}
