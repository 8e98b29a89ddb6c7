package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/yourname/sleepdiary/internal"
	"github.com/yourname/sleepdiary/internal/config"
	"github.com/yourname/sleepdiary/internal/storage"
)

// Seeds the configured backend with randomized sleep records, one per day
// counting back from today.
func main() {
	var (
		records = flag.Int("records", 30, "number of daily records to generate")
		user    = flag.String("user", "", "user id to generate records for (default from config)")
		seed    = flag.Int64("seed", time.Now().UnixNano(), "random seed for deterministic generation")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid config: %v\n", err)
		os.Exit(1)
	}
	userID := *user
	if userID == "" {
		userID = cfg.DefaultUser
	}

	repo, err := storage.NewRepository(cfg, internal.NopLogger{})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to init storage: %v\n", err)
		os.Exit(1)
	}
	defer repo.Close()

	rng := rand.New(rand.NewSource(*seed))
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	now := time.Now().UTC()
	for i := 0; i < *records; i++ {
		day := now.AddDate(0, 0, -i)
		rec := &internal.SleepRecord{
			ID:         uuid.NewString(),
			UserID:     userID,
			Date:       day.Format(internal.DateLayout),
			SleepHours: float64(rng.Intn(41)+60) / 10, // 6.0–10.0, one decimal
			Mood:       internal.Moods[rng.Intn(len(internal.Moods))],
			SleepScore: rng.Intn(5) + 1,
			CreatedAt:  day,
			UpdatedAt:  day,
		}
		if err := repo.Create(ctx, rec); err != nil {
			fmt.Fprintf(os.Stderr, "failed to insert record for %s: %v\n", rec.Date, err)
			os.Exit(1)
		}
	}

	fmt.Printf("inserted %d records for %s (backend=%s)\n", *records, userID, cfg.Backend)
}
