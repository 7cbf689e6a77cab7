package main

import "github.com/Beingstupid4me/tmto-backend/cmd/server/cmd"

func main() {
	cmd.Execute()
}
