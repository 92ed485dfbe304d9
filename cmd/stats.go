package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/seonho-dev/tutorgraph/internal/profile"
	"github.com/seonho-dev/tutorgraph/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()
		learnerID := resolveLearnerID(cmd)

		prof, err := profile.Load(ctx, s.ProfileRepo(), learnerID)
		if err != nil {
			return fmt.Errorf("load profile: %w", err)
		}

		fmt.Printf("Learner: %s\n\n", learnerID)

		explained := prof.Explained()
		if len(explained) == 0 {
			fmt.Println("No concepts explained yet. Run `tutorgraph` to start learning.")
		} else {
			fmt.Println("Explained Concepts (in learning order)")
			fmt.Println(strings.Repeat("─", 48))
			for i, name := range explained {
				count := prof.ExplanationCount(name)
				marker := ""
				if count == 0 {
					marker = "  (already known)"
				} else if count > 1 {
					marker = fmt.Sprintf("  (explained %d times)", count)
				}
				fmt.Printf("%3d. %s%s\n", i+1, name, marker)
			}
		}

		if weak := prof.WeakConcepts(); len(weak) > 0 {
			fmt.Println()
			fmt.Println("Concepts Needing Review")
			fmt.Println(strings.Repeat("─", 48))
			for _, w := range weak {
				fmt.Printf("  %s (explained %d times)\n", w, prof.ExplanationCount(w))
			}
		}

		turns, err := s.EventRepo().TurnStatsFor(ctx, learnerID)
		if err != nil {
			return fmt.Errorf("query turn stats: %w", err)
		}
		if turns.TotalTurns > 0 {
			fmt.Println()
			fmt.Println("Dialogue Activity")
			fmt.Println(strings.Repeat("─", 48))
			fmt.Printf("  Turns:    %d", turns.TotalTurns)
			if turns.Sessions > 0 {
				fmt.Printf("  (across %d sessions)", turns.Sessions)
			}
			fmt.Println()
			for task, n := range turns.TurnsByTask {
				if task == "" {
					continue
				}
				fmt.Printf("    %-14s %d\n", task, n)
			}
			fmt.Printf("  Last:     %s\n", turns.LastActivity.Local().Format("2006-01-02 15:04"))
		}

		missing, err := s.EventRepo().TopMissingConcepts(ctx, 10)
		if err != nil {
			return fmt.Errorf("query missing concepts: %w", err)
		}
		if len(missing) > 0 {
			fmt.Println()
			fmt.Println("Concepts Missing From the Graph")
			fmt.Println(strings.Repeat("─", 48))
			for _, mc := range missing {
				fmt.Printf("  %-24s asked %d times\n", mc.Name, mc.HitCount)
			}
		}

		return nil
	},
}
