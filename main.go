package main

import "github.com/adiwerna/duita/cmd"

func main() {
	cmd.Execute()
}
