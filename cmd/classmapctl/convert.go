package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newConvertCmd())
}

func newConvertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "convert <in> <out>",
		Short: "Re-encode or recompress a bundle",
		Long: `The convert command reads a bundle and writes it under a new name.
The codec and compression of the output follow its extension.

Example:
  classmapctl convert people.yaml people.cbor.zst
  classmapctl convert people.json.lz4 people.toml`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, args[0], args[1])
		},
	}
}

func runConvert(cmd *cobra.Command, in, out string) error {
	loader := newLoader()
	doc, _, err := loader.LoadDocument(cmd.Context(), in)
	if err != nil {
		return err
	}
	sum, err := loader.Save(cmd.Context(), out, doc)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s (crc32c %08x)\n", in, out, sum)
	return err
}
