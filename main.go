package main

import "glean/cmd"

func main() {
	cmd.Execute()
}
