package main

import (
	"recouvra/cmd"

	_ "github.com/lib/pq"
)

func main() {
	cmd.Execute()
}
