package plangen

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log"
	"sort"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"moti/internal/llm"
)

// OverviewGen generates the high-level step overview for a goal. Results are
// memoized per goal+answers combination: the overview only changes when the
// user goes back and changes their answers, so repeated approvals reuse the
// cached value. Fallback overviews are not cached; a retry should get
// another chance at real generation.
type OverviewGen struct {
	LLM   llm.Client
	cache *lru.Cache[string, *Overview]
}

func NewOverviewGen(client llm.Client, cacheSize int) *OverviewGen {
	if cacheSize <= 0 {
		cacheSize = 256
	}
	cache, err := lru.New[string, *Overview](cacheSize)
	if err != nil {
		// Only reachable with a non-positive size; guarded above.
		panic(err)
	}
	return &OverviewGen{LLM: client, cache: cache}
}

func (o *OverviewGen) Run(ctx context.Context, goal string, answers AnswerSet) (*Overview, error) {
	if strings.TrimSpace(goal) == "" {
		return nil, ErrInvalidInput
	}

	key := overviewKey(goal, answers)
	if o.cache != nil {
		if cached, ok := o.cache.Get(key); ok {
			return cached, nil
		}
	}

	text, err := complete(ctx, o.LLM, TaskOverview, overviewPrompt(goal, answers))
	if err == nil {
		if overview, perr := parseOverview(Normalize(text)); perr == nil {
			if o.cache != nil {
				o.cache.Add(key, overview)
			}
			return overview, nil
		} else {
			err = perr
		}
	}
	if substitutable(err) {
		log.Printf("overview: substituting fallback: %v", err)
		return fallbackOverview(), nil
	}
	return nil, err
}

func overviewKey(goal string, answers AnswerSet) string {
	questions := make([]string, 0, len(answers))
	for q := range answers {
		questions = append(questions, q)
	}
	sort.Strings(questions)

	h := sha256.New()
	h.Write([]byte(goal))
	for _, q := range questions {
		h.Write([]byte{0})
		h.Write([]byte(q))
		h.Write([]byte{0x1f})
		h.Write([]byte(answers[q]))
	}
	return hex.EncodeToString(h.Sum(nil))
}
