package cmd

import (
	"fmt"
	"math/rand"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/Beingstupid4me/tmto-backend/internal/domain/records"
	"github.com/Beingstupid4me/tmto-backend/internal/storage/jsonfile"
)

var seedRandomSeed int64

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Regenerate the catalog JSON files",
	Long: `Regenerate technologies.json and events.json in the data directory,
overwriting whatever is there. Use --seed to make the generated technology
catalog reproducible.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSeed(cmd)
	},
}

func init() {
	seedCmd.Flags().StringVar(&dataDir, "data-dir", "", "directory holding the catalog JSON files (default: .)")
	seedCmd.Flags().Int64Var(&seedRandomSeed, "seed", 0, "random seed for generated data (default: time-based)")
}

func runSeed(cmd *cobra.Command) error {
	cfg := loadConfig()

	source := seedRandomSeed
	if source == 0 {
		source = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(source))

	techPath := filepath.Join(cfg.Data.Dir, "technologies.json")
	eventsPath := filepath.Join(cfg.Data.Dir, "events.json")

	technologies := records.GenerateTechnologies(rng)
	if err := jsonfile.New(techPath).Save(technologies); err != nil {
		return fmt.Errorf("write %s: %w", techPath, err)
	}
	events := records.GenerateEvents()
	if err := jsonfile.New(eventsPath).Save(events); err != nil {
		return fmt.Errorf("write %s: %w", eventsPath, err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "wrote %d technologies to %s\n", len(technologies), techPath)
	fmt.Fprintf(out, "wrote %d events to %s\n", len(events), eventsPath)
	return nil
}
