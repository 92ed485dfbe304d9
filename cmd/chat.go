package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/seonho-dev/tutorgraph/internal/app"
	"github.com/seonho-dev/tutorgraph/internal/kgraph"
	"github.com/seonho-dev/tutorgraph/internal/llm"
	"github.com/seonho-dev/tutorgraph/internal/logging"
	"github.com/seonho-dev/tutorgraph/internal/profile"
	"github.com/seonho-dev/tutorgraph/internal/store"
	"github.com/seonho-dev/tutorgraph/internal/tutor"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start a tutoring chat",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runChat(cmd)
	},
}

// runChat opens the store, builds the engine's collaborators, and
// launches the TUI.
func runChat(cmd *cobra.Command) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	logPath, err := logging.DefaultLogPath()
	if err != nil {
		logPath = ""
	}
	log, err := logging.New(os.Getenv("TUTORGRAPH_LOG_MODE"), logPath)
	if err != nil {
		log = logging.Nop()
	}
	defer log.Sync()

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	eventRepo := st.EventRepo()
	profileRepo := st.ProfileRepo()

	learnerID := resolveLearnerID(cmd)
	prof, err := profile.Load(ctx, profileRepo, learnerID)
	if err != nil {
		return fmt.Errorf("load profile: %w", err)
	}

	graph, err := openGraph(ctx, log)
	if err != nil {
		return fmt.Errorf("open knowledge graph: %w", err)
	}
	defer graph.Close(ctx)

	provider, err := llm.NewProviderFromEnv(ctx, eventRepo)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Set TUTORGRAPH_LLM_PROVIDER (or ANTHROPIC_API_KEY / OPENAI_API_KEY / GEMINI_API_KEY) and retry.")
		return err
	}

	engine, err := tutor.NewEngine(tutor.Options{
		Provider:    provider,
		Graph:       graph,
		Profile:     prof,
		ProfileRepo: profileRepo,
		EventRepo:   eventRepo,
		SessionID:   uuid.New().String(),
		Logger:      log,
	})
	if err != nil {
		return fmt.Errorf("build engine: %w", err)
	}

	return app.Run(app.Options{
		Engine:    engine,
		LearnerID: learnerID,
		Logger:    log,
	})
}

// openGraph connects to Neo4j when NEO4J_URI is set, otherwise serves the
// built-in seeded curriculum from memory.
func openGraph(ctx context.Context, log *logging.Logger) (kgraph.Graph, error) {
	ng, err := kgraph.NewNeo4jFromEnv(log)
	if err != nil {
		return nil, err
	}
	if ng != nil {
		return ng, nil
	}

	log.Info("NEO4J_URI not set, using built-in curriculum graph")
	mg := kgraph.NewMemoryGraph()
	kgraph.Seed(mg)
	return mg, nil
}
