package main

import "github.com/Sena-ops/spotfix/cmd"

func main() {
	cmd.Execute()
}
