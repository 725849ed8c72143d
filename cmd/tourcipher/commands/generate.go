package commands

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"tourcipher/internal/domain"
)

// generate [--save name] [--seal]: derive a key and optionally persist it.
func generateCmd() *cobra.Command {
	var (
		saveName string
		seal     bool
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Derive a tour key from a passphrase",
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

			color.Green("Knight's tour completed: %d cells", len(rep.Key))
			fmt.Printf("Starting position: (%d, %d)\n", rep.Start.Row, rep.Start.Col)
			fmt.Printf("Key sequence: %s\n", formatKey(rep.Key))

			if saveName == "" {
				return nil
			}
			if seal {
				err = appCtx.Keyring.SaveSealed(saveName, string(pass), rep.Key)
			} else {
				err = appCtx.Keyring.Save(saveName, rep.Key)
			}
			if err != nil {
				return err
			}
			fmt.Printf("Key saved as %q\n", saveName)
			return nil
		},
	}
	cmd.Flags().StringVar(&saveName, "save", "", "save the key under this name")
	cmd.Flags().BoolVar(&seal, "seal", false, "encrypt the saved key with the passphrase")
	return cmd
}
