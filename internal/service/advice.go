package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/yourname/sleepdiary/internal"
	"github.com/yourname/sleepdiary/internal/storage"
)

// Completer is the port onto the external text-completion service. The
// concrete provider can be swapped without touching the advice generator.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Fixed user-facing messages for the two paths where no generated text is
// available. Advice must never surface a provider failure to the caller.
const (
	AdviceInsufficientData = "Not enough sleep records yet to generate advice. Log a few nights of sleep and try again."
	AdviceGenerationFailed = "Sleep advice could not be generated right now. Please try again later."
)

// BuildAdvicePrompt renders the recent records into the prompt sent to the
// completion service, most recent first.
func BuildAdvicePrompt(records []internal.SleepRecord) string {
	var b strings.Builder
	b.WriteString("Here are my recent sleep records, most recent first:\n")
	for _, r := range records {
		fmt.Fprintf(&b, "- %s: slept %.1f hours, mood %s, sleep score %d/5\n",
			r.Date, r.SleepHours, r.Mood, r.SleepScore)
	}
	b.WriteString("\nBased on these records, give 3 to 5 concrete recommendations to improve my sleep.")
	return b.String()
}

// GenerateAdvice fetches the user's recent records and asks the completion
// service for recommendations. Provider failures are absorbed into a fixed
// fallback string; only store errors propagate.
func GenerateAdvice(ctx context.Context, repo storage.SleepRecordRepository, completer Completer, logger internal.Logger, userID string, timeout time.Duration) (string, error) {
	records, err := RecentByUser(ctx, repo, userID, DefaultRecentLimit)
	if err != nil {
		return "", err
	}
	if len(records) == 0 {
		return AdviceInsufficientData, nil
	}

	cctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	advice, err := completer.Complete(cctx, BuildAdvicePrompt(records))
	if err != nil {
		logger.Warnf("advice generation failed for user %s: %v", userID, err)
		return AdviceGenerationFailed, nil
	}
	if strings.TrimSpace(advice) == "" {
		logger.Warnf("advice provider returned empty response for user %s", userID)
		return AdviceGenerationFailed, nil
	}
	return advice, nil
}
