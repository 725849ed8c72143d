package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"tourcipher/internal/app"
	"tourcipher/internal/domain"
)

var (
	home       string
	boardSize  int
	passphrase string
	appCtx     *app.Wire
)

func Execute() error {
	root := &cobra.Command{
		Use:   "tourcipher",
		Short: "Knight's tour keystream cipher CLI",
		Long: "tourcipher derives a deterministic key from a passphrase by solving a\n" +
			"knight's tour on an NxN board, then uses the visit order as a repeating\n" +
			"XOR keystream.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if home == "" {
				dir, err := os.UserHomeDir()
				if err != nil {
					return err
				}
				home = filepath.Join(dir, ".tourcipher")
			}
			if err := os.MkdirAll(home, 0o700); err != nil {
				return err
			}

			var err error
			appCtx, err = app.NewWire(app.Config{Home: home, BoardSize: boardSize})
			return err
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "config dir (default ~/.tourcipher)")
	root.PersistentFlags().IntVarP(&boardSize, "size", "n", 8, "board size (N for an NxN board)")
	root.PersistentFlags().StringVarP(&passphrase, "passphrase", "p", "", "passphrase seeding the tour")

	root.AddCommand(generateCmd(), keysCmd(), encryptCmd(), decryptCmd(), reportCmd(), benchCmd())
	return root.Execute()
}

// readPassphrase returns the -p flag value, or prompts without echo when the
// flag was not set. An empty passphrase is valid either way.
func readPassphrase(cmd *cobra.Command) ([]byte, error) {
	if cmd.Flags().Changed("passphrase") {
		return []byte(passphrase), nil
	}
	fmt.Fprint(os.Stderr, "Passphrase: ")
	b, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return nil, fmt.Errorf("reading passphrase: %w", err)
	}
	return b, nil
}

// resolveKey returns the key a cipher command should use: a saved key when
// --key names one, the passphrase-derived key otherwise.
func resolveKey(cmd *cobra.Command, keyName string, sealed bool) (domain.Key, error) {
	if keyName == "" {
		pass, err := readPassphrase(cmd)
		if err != nil {
			return nil, err
		}
		rep, err := appCtx.Keyring.Generate(pass)
		if err != nil {
			return nil, err
		}
		return rep.Key, nil
	}
	if sealed {
		pass, err := readPassphrase(cmd)
		if err != nil {
			return nil, err
		}
		return appCtx.Keyring.LoadSealed(keyName, string(pass))
	}
	return appCtx.Keyring.Load(keyName)
}

// formatKey renders the cell sequence the way reports print it.
func formatKey(key domain.Key) string {
	parts := make([]string, len(key))
	for i, id := range key {
		parts[i] = strconv.Itoa(int(id))
	}
	return strings.Join(parts, " ")
}
