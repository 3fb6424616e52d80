// Executable huffman compresses and decompresses files with Huffman codes.
// Run "huffman help" for usage instructions.
package main

import (
	"github.com/chronos-tachyon/huffmantree/cmd/huffman/internal/cmd"
	"github.com/chronos-tachyon/huffmantree/internal/cli"
)

func main() {
	cli.ExecuteRoot(cmd.RootCmd)
}
