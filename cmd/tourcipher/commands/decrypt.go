package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// decrypt <hex>: decrypt space-separated hex ciphertext back to the message.
func decryptCmd() *cobra.Command {
	var (
		keyName string
		sealed  bool
	)
	cmd := &cobra.Command{
		Use:   "decrypt <hex>",
		Short: "Decrypt hex ciphertext back to the message",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := resolveKey(cmd, keyName, sealed)
			if err != nil {
				return err
			}
			plaintext, err := appCtx.Messages.Decrypt(args[0], key)
			if err != nil {
				return err
			}
			fmt.Printf("%s\n", plaintext)
			return nil
		},
	}
	cmd.Flags().StringVar(&keyName, "key", "", "use a saved key instead of deriving one")
	cmd.Flags().BoolVar(&sealed, "sealed", false, "the saved key is passphrase-sealed")
	return cmd
}
