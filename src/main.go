package main

import "github.com/lua-bridge/build-addon/src/cmd"

func main() {
	cmd.Execute()
}
