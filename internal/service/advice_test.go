package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yourname/sleepdiary/internal"
	"github.com/yourname/sleepdiary/internal/storage"
)

type stubCompleter struct {
	response string
	err      error
	calls    int
	prompts  []string
}

func (s *stubCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	s.calls++
	s.prompts = append(s.prompts, prompt)
	return s.response, s.err
}

func TestGenerateAdviceNoRecords(t *testing.T) {
	repo := storage.NewMemoryStorage()
	completer := &stubCompleter{response: "should not appear"}

	advice, err := GenerateAdvice(context.Background(), repo, completer, internal.NopLogger{}, "userX", time.Second)
	require.NoError(t, err)
	assert.Equal(t, AdviceInsufficientData, advice)
	assert.Equal(t, 0, completer.calls, "completer must not be contacted without records")
}

func TestGenerateAdvicePassesThroughResponse(t *testing.T) {
	repo := storage.NewMemoryStorage()
	now := time.Now().UTC()
	seedRecord(t, repo, "u1", daysAgo(now, 0), 7.5, 4)
	seedRecord(t, repo, "u1", daysAgo(now, 1), 6.0, 2)

	completer := &stubCompleter{response: "Go to bed earlier."}
	advice, err := GenerateAdvice(context.Background(), repo, completer, internal.NopLogger{}, "u1", time.Second)
	require.NoError(t, err)
	assert.Equal(t, "Go to bed earlier.", advice)
	require.Equal(t, 1, completer.calls)

	prompt := completer.prompts[0]
	assert.Contains(t, prompt, daysAgo(now, 0))
	assert.Contains(t, prompt, daysAgo(now, 1))
	assert.Contains(t, prompt, "slept 7.5 hours")
	assert.Contains(t, prompt, "sleep score 4/5")
	assert.Contains(t, prompt, "3 to 5 concrete recommendations")
}

func TestGenerateAdviceFallsBackOnProviderError(t *testing.T) {
	repo := storage.NewMemoryStorage()
	now := time.Now().UTC()
	seedRecord(t, repo, "u1", daysAgo(now, 0), 7.5, 4)

	completer := &stubCompleter{err: errors.New("upstream timeout")}
	advice, err := GenerateAdvice(context.Background(), repo, completer, internal.NopLogger{}, "u1", time.Second)
	require.NoError(t, err, "provider failures must never propagate")
	assert.Equal(t, AdviceGenerationFailed, advice)
}

func TestGenerateAdviceFallsBackOnBlankResponse(t *testing.T) {
	repo := storage.NewMemoryStorage()
	now := time.Now().UTC()
	seedRecord(t, repo, "u1", daysAgo(now, 0), 7.5, 4)

	completer := &stubCompleter{response: "   \n"}
	advice, err := GenerateAdvice(context.Background(), repo, completer, internal.NopLogger{}, "u1", time.Second)
	require.NoError(t, err)
	assert.Equal(t, AdviceGenerationFailed, advice)
}

func TestBuildAdvicePromptOrder(t *testing.T) {
	records := []internal.SleepRecord{
		{Date: "2026-08-30", SleepHours: 7.5, Mood: internal.MoodGood, SleepScore: 4},
		{Date: "2026-08-29", SleepHours: 6.0, Mood: internal.MoodBad, SleepScore: 2},
	}
	prompt := BuildAdvicePrompt(records)
	assert.Contains(t, prompt, "- 2026-08-30: slept 7.5 hours, mood good, sleep score 4/5")
	assert.Contains(t, prompt, "- 2026-08-29: slept 6.0 hours, mood bad, sleep score 2/5")
	// most recent line comes first
	assert.Less(t, strings.Index(prompt, "2026-08-30"), strings.Index(prompt, "2026-08-29"))
}
