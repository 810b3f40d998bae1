/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/rlepack/rlepack/pkg/codec"
)

// textCmd groups the text mode commands
var textCmd = &cobra.Command{
	Use:   "text",
	Short: "Encode and decode text via hex run-codes",
}

// textEncodeCmd represents the text encode command
var textEncodeCmd = &cobra.Command{
	Use:   "encode <text>",
	Short: "Run-length encode text and print the hex run-code",
	Long: `Run-length encode the given text and print the result as a hex
string, two lowercase digits per run-code byte.

Example:
  rlepack text encode aaabbbbbc`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		encoded := codec.Encode([]byte(args[0]))
		cmd.Printf("%s\n", codec.BytesToHex(encoded))
	},
}

// textDecodeCmd represents the text decode command
var textDecodeCmd = &cobra.Command{
	Use:   "decode <hex>",
	Short: "Decode a hex run-code back to text",
	Long: `Parse a hex run-code string and print the decoded text.

An odd-length string, a non-hex character, or an odd-length run-code is
rejected as malformed.

Example:
  rlepack text decode 036105620163`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		encoded, err := codec.HexToBytes(args[0])
		if err != nil {
			cmd.Printf("Error parsing hex: %v\n", err)
			os.Exit(1)
		}

		decoded, err := codec.Decode(encoded)
		if err != nil {
			cmd.Printf("Error decoding: %v\n", err)
			os.Exit(1)
		}

		cmd.Printf("%s\n", decoded)
	},
}

func init() {
	rootCmd.AddCommand(textCmd)
	textCmd.AddCommand(textEncodeCmd)
	textCmd.AddCommand(textDecodeCmd)
}
