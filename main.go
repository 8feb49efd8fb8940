package main

import "github.com/0xb0b1/portfolio/cmd"

func main() {
	cmd.Execute()
}
