// Package gemini produces assistant replies, rotating through the
// configured API keys until one succeeds or all are exhausted.
package gemini

import (
	"context"
	"log/slog"
	"strings"

	"github.com/samber/lo"

	"github.com/xdpzq/devcore/pkg/domain"
	"github.com/xdpzq/devcore/pkg/logger"
)

// Caller performs one upstream attempt with a single credential.
type Caller interface {
	GenerateContent(ctx context.Context, apiKey string, req domain.GenerationRequest) (string, error)
}

type Generator struct {
	caller Caller
}

func NewGenerator(caller Caller) *Generator {
	return &Generator{caller: caller}
}

// Generate walks the key list in order, one immediate attempt per key and
// no retries of an already-failed index. Per-key failures are logged but
// only the terminal outcome is surfaced. Makes no outbound call when the
// list is empty after discarding blank entries.
func (g *Generator) Generate(ctx context.Context, req domain.GenerationRequest, apiKeys []string) (string, error) {
	keys := lo.Filter(apiKeys, func(k string, _ int) bool {
		return strings.TrimSpace(k) != ""
	})
	if len(keys) == 0 {
		return "", domain.ErrNoAPIKeys
	}

	for i, key := range keys {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		text, err := g.caller.GenerateContent(ctx, key, req)
		if err != nil {
			slog.WarnContext(ctx, "generation attempt failed, rotating key",
				"keyIndex", i, "keysLeft", len(keys)-i-1, logger.Err(err))
			continue
		}
		if text == "" {
			return domain.NoDataPlaceholder, nil
		}
		return text, nil
	}

	return "", domain.ErrKeysExhausted
}
