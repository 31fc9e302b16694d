package native

import (
	"context"
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/harnstore/harn-cli/internal/ports"
)

var ErrUnavailable = errors.New("system clipboard unavailable")

type writeFunc func(text string) error

// Copier writes through the platform's native clipboard mechanism.
type Copier struct {
	write writeFunc
}

var _ ports.Clipboard = (*Copier)(nil)

func NewCopier() *Copier {
	return &Copier{write: writeSystemClipboard}
}

func (c *Copier) Copy(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := c.write(text); err != nil {
		return fmt.Errorf("write system clipboard: %w", err)
	}

	return nil
}

func writeSystemClipboard(text string) error {
	if clipboard.Unsupported {
		return ErrUnavailable
	}

	return clipboard.WriteAll(text)
}
