package main

import "rosterfill/cmd"

func main() {
	cmd.Execute()
}
