package main

import "github.com/menta2k/viewfinder/cmd/viewfinder/cmd"

func main() {
	cmd.Execute()
}
