package main

import (
	"github.com/ic2bedrock/texmigrate/cmd/texmigrate/cmd"
)

func main() {
	cmd.Execute()
}
