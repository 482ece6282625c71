package translation

import (
	"context"
	"fmt"
	"strings"
)

// translateSequential runs one translate call per element, strictly in input
// order. No concurrency: unpublished vendor rate limits make bursts unsafe,
// and single-flight keeps adapters stateless-simple. The first failing
// element fails the whole batch.
func translateSequential(
	ctx context.Context,
	texts []string,
	translate func(ctx context.Context, text string) (string, error),
) ([]string, error) {
	out := make([]string, 0, len(texts))
	for i, text := range texts {
		translated, err := translate(ctx, text)
		if err != nil {
			return nil, fmt.Errorf("batch element %d: %w", i, err)
		}
		out = append(out, translated)
	}
	return out, nil
}

func requireText(vendor, text string) (string, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return "", configErrorf(vendor, "text is required")
	}
	return trimmed, nil
}
