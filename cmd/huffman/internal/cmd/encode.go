package cmd

import (
	"bytes"
	"time"

	"github.com/spf13/cobra"

	"github.com/chronos-tachyon/huffmantree/archive"
)

var encodeCmd = &cobra.Command{
	Use:   "encode",
	Short: "Compress a file into a Huffman archive.",
	Long: `Compress a file into a Huffman archive.

The alphabet is taken from the configuration file unless --alphabet is
given. Use "runes" for UTF-8 text and "bytes" for anything else.`,
	Args: cobra.NoArgs,
	RunE: runEncode,
}

func init() {
	RootCmd.AddCommand(encodeCmd)
	encodeCmd.Flags().StringP("input", "i", "-", "File to compress, or - for stdin")
	encodeCmd.Flags().StringP("output", "o", "-", "Archive to write, or - for stdout")
	encodeCmd.Flags().StringP("alphabet", "a", "", "Symbol unit: bytes or runes")
}

func runEncode(cmd *cobra.Command, args []string) error {
	conf, logger, err := loadEnv(cmd)
	if err != nil {
		return err
	}
	defer logger.Sync()

	alphabetName := conf.Alphabet
	if cmd.Flags().Changed("alphabet") {
		alphabetName = cmd.Flag("alphabet").Value.String()
	}
	alphabet, err := archive.ParseAlphabet(alphabetName)
	if err != nil {
		return err
	}

	inPath := cmd.Flag("input").Value.String()
	data, err := readInput(cmd, inPath)
	if err != nil {
		return err
	}

	start := time.Now()
	var buf bytes.Buffer
	h, err := archive.Compress(&buf, data, archive.WithAlphabet(alphabet), archive.WithLogger(logger.Zap()))
	if err != nil {
		logger.Error("encode failed", "input", inPath, "error", err)
		return err
	}

	outPath := cmd.Flag("output").Value.String()
	if err := writeOutput(cmd, outPath, buf.Bytes()); err != nil {
		return err
	}

	logger.Info("encoded",
		"input", inPath,
		"output", outPath,
		"alphabet", h.Alphabet.String(),
		"symbols", h.NumSymbols,
		"inputBytes", len(data),
		"outputBytes", buf.Len(),
		"ratio", ratio(buf.Len(), len(data)),
		"duration", time.Since(start))
	return nil
}

func ratio(num, den int) float64 {
	if den == 0 {
		return 0
	}
	return float64(num) / float64(den)
}
