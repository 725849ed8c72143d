package commands

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"tourcipher/internal/domain"
)

// report: print the full key report for a passphrase.
func reportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Print the key report for a passphrase",
		RunE: func(cmd *cobra.Command, args []string) error {
			pass, err := readPassphrase(cmd)
			if err != nil {
				return err
			}
			rep, err := appCtx.Keyring.Generate(pass)
			if errors.Is(err, domain.ErrInfeasible) {
				return fmt.Errorf("knight's tour failed to complete on a %dx%d board", boardSize, boardSize)
			}
			if err != nil {
				return err
			}

			color.Cyan("=== Encryption Key Report ===")
			fmt.Printf("Key length: %d\n", len(rep.Key))
			fmt.Printf("Key sequence: %s\n", formatKey(rep.Key))
			fmt.Printf("Hashed passphrase: %s\n", rep.HexDigest)
			fmt.Printf("Starting position: (%d, %d)\n", rep.Start.Row, rep.Start.Col)
			return nil
		},
	}
}
