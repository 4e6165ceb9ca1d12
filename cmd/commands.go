package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newRootCommand constructs the root command. Given a record file it
// decrypts the record's message and prints the plaintext with no trailing
// newline.
func newRootCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "vic <record-file>",
		Short:         "Decrypts a VIC-enciphered message",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, rec, err := readRecord(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			res, err := a.cipher.Decrypt(ctx, *rec)
			if err != nil {
				return err
			}

			_, err = fmt.Fprint(cmd.OutOrStdout(), res.Plaintext)

			return err
		},
	}

	cmd.AddCommand(
		encryptCommand(a),
		boardCommand(a),
	)

	return cmd
}

// encryptCommand constructs the 'encrypt' subcommand that treats the record's
// message as plaintext and prints the coded digits.
func encryptCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "encrypt <record-file>",
		Short: "Encrypts the record's message",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, rec, err := readRecord(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			coded, err := a.cipher.Encrypt(ctx, *rec)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), coded)

			return err
		},
	}
}

// boardCommand constructs the 'board' subcommand that prints the straddling
// checkerboard derived from the record.
func boardCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "board <record-file>",
		Short: "Prints the record's straddling checkerboard",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, rec, err := readRecord(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			board, err := a.cipher.Board(ctx, *rec)
			if err != nil {
				return err
			}

			_, err = fmt.Fprint(cmd.OutOrStdout(), board.String())

			return err
		},
	}
}
