// Copyright © 2018 One Concern

package main

import (
	"github.com/oneconcern/linecomm/cmd/linecomm/cmd"
)

func main() {
	cmd.Execute()
}
