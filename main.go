package main

import "github.com/beka-birhanu/vinom-pathfinder/cmd"

func main() {
	cmd.Execute()
}
