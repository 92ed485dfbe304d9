package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/seonho-dev/tutorgraph/internal/store"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset a learner's study memory",
	RunE: func(cmd *cobra.Command, args []string) error {
		learnerID := resolveLearnerID(cmd)

		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			fmt.Printf("This deletes the study memory for learner %q. Continue? [y/N] ", learnerID)
			reader := bufio.NewReader(os.Stdin)
			answer, _ := reader.ReadString('\n')
			if a := strings.ToLower(strings.TrimSpace(answer)); a != "y" && a != "yes" {
				fmt.Println("Aborted.")
				return nil
			}
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		if err := s.ProfileRepo().Reset(context.Background(), learnerID); err != nil {
			return fmt.Errorf("reset profile: %w", err)
		}

		fmt.Printf("Study memory for %q has been reset. Event history is preserved.\n", learnerID)
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
}
