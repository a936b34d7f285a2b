package main

import "github.com/vietddude/nftplatform/internal/cli"

func main() {
	cli.Execute()
}
