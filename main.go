// Nook is a tool for browsing and bidding on The Nook Market auctions from the command line.
package main

import (
	"github.com/nookmarket/nook-cli/cmd"
)

func main() {
	cmd.Run()
}
