/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/rlepack/rlepack/pkg/archive"
)

// encodeCmd represents the encode command
var encodeCmd = &cobra.Command{
	Use:   "encode <file>",
	Short: "Run-length encode a file",
	Long: `Run-length encode a file and write the result next to it.

The output file is the input path plus the encoded suffix (default
".encoded") and contains the raw run-code bytes with no header.

Example:
  rlepack encode picture.bmp`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := configFromContext(cmd)

		opts := archive.Options{
			EncodedSuffix: cfg.Output.EncodedSuffix,
			DecodedSuffix: cfg.Output.DecodedSuffix,
		}

		outPath, err := archive.EncodeFile(args[0], opts)
		if err != nil {
			cmd.Printf("Error encoding file: %v\n", err)
			os.Exit(1)
		}

		cmd.Printf("Encoded %s -> %s\n", args[0], outPath)
	},
}

func init() {
	rootCmd.AddCommand(encodeCmd)
}
