package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// encrypt <message>: XOR-encrypt a message and print hex ciphertext.
func encryptCmd() *cobra.Command {
	var (
		keyName string
		sealed  bool
	)
	cmd := &cobra.Command{
		Use:   "encrypt <message>",
		Short: "Encrypt a message, printing hex ciphertext",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := resolveKey(cmd, keyName, sealed)
			if err != nil {
				return err
			}
			hexText, err := appCtx.Messages.Encrypt([]byte(args[0]), key)
			if err != nil {
				return err
			}
			fmt.Println(hexText)
			return nil
		},
	}
	cmd.Flags().StringVar(&keyName, "key", "", "use a saved key instead of deriving one")
	cmd.Flags().BoolVar(&sealed, "sealed", false, "the saved key is passphrase-sealed")
	return cmd
}
