package main

import "github.com/nfrund/iconkit/cmd/iconkit/cmd"

func main() {
	cmd.Execute()
}
