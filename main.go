package main

import "github.com/crillab/gotruth/cmd"

func main() {
	cmd.Execute()
}
