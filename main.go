package main

import "github.com/wcfrobert/wthisj/cmd"

func main() {
	cmd.Execute()
}
