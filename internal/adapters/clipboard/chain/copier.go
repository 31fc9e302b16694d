package chain

import (
	"context"
	"errors"
	"fmt"
	"io"

	nativeclip "github.com/harnstore/harn-cli/internal/adapters/clipboard/native"
	osc52clip "github.com/harnstore/harn-cli/internal/adapters/clipboard/osc52"
	"github.com/harnstore/harn-cli/internal/ports"
)

// Copier tries the primary clipboard mechanism and falls back to the
// secondary one when the primary fails. Each call owns its own transient
// resources, so concurrent calls need no mutual exclusion here.
type Copier struct {
	primary  ports.Clipboard
	fallback ports.Clipboard
}

var _ ports.Clipboard = (*Copier)(nil)

var (
	errNilPrimaryCopier  = errors.New("primary clipboard is nil")
	errNilFallbackCopier = errors.New("fallback clipboard is nil")
)

func NewCopier(primary ports.Clipboard, fallback ports.Clipboard) (*Copier, error) {
	if primary == nil {
		return nil, errNilPrimaryCopier
	}
	if fallback == nil {
		return nil, errNilFallbackCopier
	}

	return &Copier{primary: primary, fallback: fallback}, nil
}

// NewNativeFirstWithOSC52Fallback wires the default chain: the system
// clipboard first, an OSC 52 escape written to out when that fails.
func NewNativeFirstWithOSC52Fallback(out io.Writer) (*Copier, error) {
	fallback, err := osc52clip.NewCopier(out)
	if err != nil {
		return nil, err
	}

	return NewCopier(nativeclip.NewCopier(), fallback)
}

func (c *Copier) Copy(ctx context.Context, text string) error {
	err := c.primary.Copy(ctx, text)
	if err == nil {
		return nil
	}
	if shouldSkipFallback(err) {
		return err
	}

	fallbackErr := c.fallback.Copy(ctx, text)
	if fallbackErr == nil {
		return nil
	}

	return fmt.Errorf("primary clipboard copy failed: %w; fallback clipboard copy failed: %w", err, fallbackErr)
}

func shouldSkipFallback(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
