package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

const (
	benchPassphrase = "samplepassphrase"
	benchMessage    = "This is a sample message for encryption."
)

// bench: wall-clock timing of generation, encryption and decryption for the
// sample scenario.
func benchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bench",
		Short: "Time key generation and the cipher round trip",
		RunE: func(cmd *cobra.Command, args []string) error {
			start := time.Now()
			rep, err := appCtx.Keyring.Generate([]byte(benchPassphrase))
			if err != nil {
				return err
			}
			fmt.Printf("Key generation:  %v\n", time.Since(start))

			start = time.Now()
			hexText, err := appCtx.Messages.Encrypt([]byte(benchMessage), rep.Key)
			if err != nil {
				return err
			}
			fmt.Printf("Encryption:      %v\n", time.Since(start))

			start = time.Now()
			if _, err := appCtx.Messages.Decrypt(hexText, rep.Key); err != nil {
				return err
			}
			fmt.Printf("Decryption:      %v\n", time.Since(start))
			return nil
		},
	}
}
