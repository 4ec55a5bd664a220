package main

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/calebcase/bigint/control"
	"github.com/calebcase/bigint/integer"
)

func newEncodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "encode <a>...",
		Short: "Encode values as a hex control block stream (\"null\" writes a null block)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			buf := &bytes.Buffer{}
			e := integer.NewEncoder(control.NewEncoder(buf))

			for _, arg := range args {
				var x *integer.Int
				if arg != "null" {
					var err error
					x, err = parseOperand(arg)
					if err != nil {
						return err
					}
				}

				if err := e.Encode(x); err != nil {
					return err
				}
			}

			fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(buf.Bytes()))
			return nil
		},
	}
}

func newDecodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode <hex>",
		Short: "Decode a hex control block stream, one value per line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := hex.DecodeString(args[0])
			if err != nil {
				return fmt.Errorf("decode hex: %w", err)
			}

			d := integer.NewDecoder(control.NewDecoder(bytes.NewReader(data)))

			for {
				x, err := d.Decode()
				if errors.Is(err, io.EOF) {
					return nil
				}
				if err != nil {
					return err
				}

				if x == nil {
					fmt.Fprintln(cmd.OutOrStdout(), "null")
					continue
				}

				fmt.Fprintln(cmd.OutOrStdout(), x)
			}
		},
	}
}
