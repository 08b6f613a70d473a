package main

import "github.com/oshokin/hearth-version/cmd/hearth-version/cmd"

func main() {
	cmd.Execute()
}
