package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// keys: list saved key files.
func keysCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keys",
		Short: "List saved key files",
		RunE: func(cmd *cobra.Command, args []string) error {
			infos, err := appCtx.Keyring.List()
			if err != nil {
				return err
			}
			if len(infos) == 0 {
				fmt.Println("no saved keys")
				return nil
			}
			for _, info := range infos {
				if info.Sealed {
					fmt.Printf("%s (sealed)\n", info.Name)
				} else {
					fmt.Printf("%s (%d cells)\n", info.Name, info.Cells)
				}
			}
			return nil
		},
	}
}
