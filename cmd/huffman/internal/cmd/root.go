// Package cmd implements the CLI commands for the huffman executable.
package cmd

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/chronos-tachyon/huffmantree/internal/cli"
	"github.com/chronos-tachyon/huffmantree/internal/config"
	"github.com/chronos-tachyon/huffmantree/internal/logging"
)

// RootCmd represents the base "huffman" command when called without any
// subcommands.
var RootCmd = cli.NewRootCommand("huffman",
	"Huffman prefix-code compressor",
	`Compress and decompress files with Huffman prefix codes.

Settings are read from a TOML configuration file, config.toml in the
current directory unless --config says otherwise. Run "huffman init"
to create one.`)

func init() {
	RootCmd.PersistentFlags().StringP("config", "c", config.DefaultFile, "Path to configuration file")
	RootCmd.AddCommand(cli.NewVersionCommand("huffman"))
}

// loadEnv loads the configuration named by the --config flag and builds the
// logger it describes.
func loadEnv(cmd *cobra.Command) (*config.Config, *logging.Logger, error) {
	conf, err := config.Load(cmd.Flag("config").Value.String())
	if err != nil {
		return nil, nil, err
	}
	logger, err := logging.New(conf.Logger)
	if err != nil {
		return nil, nil, err
	}
	return conf, logger, nil
}

// readInput reads all of path, or of the command's standard input if path
// is "-".
func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	return os.ReadFile(path)
}

// writeOutput writes data to path, or to the command's standard output if
// path is "-".
func writeOutput(cmd *cobra.Command, path string, data []byte) error {
	if path == "-" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	return os.WriteFile(path, data, 0644)
}
