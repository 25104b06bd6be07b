package main

import "github.com/iksnae/tempo/cmd"

func main() {
	cmd.Execute()
}
