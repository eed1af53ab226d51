package main

import (
	"os"

	"github.com/xnbi/Age-Verifier-based-on-ZAMA-s-Fhevm-technology/cmd/cli"
	"github.com/xnbi/Age-Verifier-based-on-ZAMA-s-Fhevm-technology/cmd/server"
)

// Runs the operator server by default; any other command is handled by the
// one-shot CLI.
func main() {
	if len(os.Args) < 2 || os.Args[1] == "server" {
		server.Main()
		return
	}
	cli.Main()
}
