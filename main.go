package main

import "github.com/pbsdocs/scanrefs/cmd"

func main() {
	cmd.Execute()
}
