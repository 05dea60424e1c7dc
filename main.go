package main

import "github.com/theirongolddev/eatwatch/cmd"

func main() {
	cmd.Execute()
}
