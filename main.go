package main

import "github.com/mouse-blink/party/cmd"

func main() {
	cmd.Execute()
}
