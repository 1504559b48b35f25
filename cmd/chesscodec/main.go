// chesscodec encodes and decodes the compact values stored by a chess
// database: position identifiers, packed moves and content fingerprints.
package main

import (
	"os"
)

const programVersion = "0.1.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
