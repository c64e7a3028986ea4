package main

import "nathanbeddoewebdev/dynucert/cmd"

func main() {
	cmd.Execute()
}
