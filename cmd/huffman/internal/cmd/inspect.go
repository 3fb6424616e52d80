package cmd

import (
	"bytes"

	"github.com/spf13/cobra"

	"github.com/chronos-tachyon/huffmantree/archive"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Print the header, tree and code table of a Huffman archive.",
	Args:  cobra.NoArgs,
	RunE:  runInspect,
}

func init() {
	RootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().StringP("input", "i", "-", "Archive to read, or - for stdin")
}

func runInspect(cmd *cobra.Command, args []string) error {
	_, logger, err := loadEnv(cmd)
	if err != nil {
		return err
	}
	defer logger.Sync()

	raw, err := readInput(cmd, cmd.Flag("input").Value.String())
	if err != nil {
		return err
	}
	_, err = archive.Inspect(bytes.NewReader(raw), cmd.OutOrStdout(), archive.WithLogger(logger.Zap()))
	return err
}
