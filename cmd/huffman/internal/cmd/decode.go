package cmd

import (
	"bytes"
	"time"

	"github.com/spf13/cobra"

	"github.com/chronos-tachyon/huffmantree/archive"
)

var decodeCmd = &cobra.Command{
	Use:   "decode",
	Short: "Restore a file from a Huffman archive.",
	Args:  cobra.NoArgs,
	RunE:  runDecode,
}

func init() {
	RootCmd.AddCommand(decodeCmd)
	decodeCmd.Flags().StringP("input", "i", "-", "Archive to read, or - for stdin")
	decodeCmd.Flags().StringP("output", "o", "-", "File to write, or - for stdout")
}

func runDecode(cmd *cobra.Command, args []string) error {
	_, logger, err := loadEnv(cmd)
	if err != nil {
		return err
	}
	defer logger.Sync()

	inPath := cmd.Flag("input").Value.String()
	raw, err := readInput(cmd, inPath)
	if err != nil {
		return err
	}

	start := time.Now()
	data, err := archive.Decompress(bytes.NewReader(raw), archive.WithLogger(logger.Zap()))
	if err != nil {
		logger.Error("decode failed", "input", inPath, "error", err)
		return err
	}

	outPath := cmd.Flag("output").Value.String()
	if err := writeOutput(cmd, outPath, data); err != nil {
		return err
	}

	logger.Info("decoded",
		"input", inPath,
		"output", outPath,
		"inputBytes", len(raw),
		"outputBytes", len(data),
		"duration", time.Since(start))
	return nil
}
