package main

import "studentdash/cmd/client/cmd"

func main() {
	cmd.Execute()
}
