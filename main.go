package main

import "github.com/memorise/nlpdemo/cmd"

func main() {
	cmd.Execute()
}
