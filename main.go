package main

import "github.com/notargets/fdsmesh/cmd"

func main() {
	cmd.Execute()
}
