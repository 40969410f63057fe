package main

import "github.com/RNSsanjay/agentium/cmd/agentium/cli"

func main() {
	cli.Execute()
}
