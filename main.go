package main

import "github.com/bbops/gsweep/cmd"

func main() {
	cmd.Execute()
}
