package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/chronos-tachyon/huffmantree/internal/cli"
	"github.com/chronos-tachyon/huffmantree/internal/config"
)

// initCmd represents the init command
var initCmd = cli.NewInitCommand("huffman", initRunFunc)

func init() {
	RootCmd.AddCommand(initCmd)
	initCmd.Flags().StringP("dir", "d", ".", "Location of directory for storing generated files")
}

func initRunFunc(cmd *cobra.Command, args []string) error {
	dir := cmd.Flag("dir").Value.String()
	file := filepath.Join(dir, config.DefaultFile)
	if err := config.Default().Save(file); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", file)
	return nil
}
