package main

import "github.com/evhq/horizon/cmd"

func main() {
	cmd.Execute()
}
