package main

import "gitlet/cmd"

func main() {
	cmd.Execute()
}
