package poster

import "context"

// TokenCounter counts the tokens a piece of page content costs the
// extraction model.
type TokenCounter interface {
	CountTokens(ctx context.Context, text string) (int, error)
}
