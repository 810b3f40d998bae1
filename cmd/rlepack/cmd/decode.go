/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/rlepack/rlepack/pkg/archive"
)

// decodeCmd represents the decode command
var decodeCmd = &cobra.Command{
	Use:   "decode <file>",
	Short: "Decode a run-length encoded file",
	Long: `Decode a run-length encoded file and write the result next to it.

The output file is the input path plus the decoded suffix (default
".decoded"). A structurally invalid source (odd length) is rejected and
no output file is written.

Example:
  rlepack decode picture.bmp.encoded`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := configFromContext(cmd)

		opts := archive.Options{
			EncodedSuffix: cfg.Output.EncodedSuffix,
			DecodedSuffix: cfg.Output.DecodedSuffix,
		}

		outPath, err := archive.DecodeFile(args[0], opts)
		if err != nil {
			cmd.Printf("Error decoding file: %v\n", err)
			os.Exit(1)
		}

		cmd.Printf("Decoded %s -> %s\n", args[0], outPath)
	},
}

func init() {
	rootCmd.AddCommand(decodeCmd)
}
