package main

import "github.com/viniciusth/lmfcs/internal/cmd"

func main() {
	cmd.Execute()
}
