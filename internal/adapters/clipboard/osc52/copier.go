package osc52

import (
	"context"
	"errors"
	"fmt"
	"io"

	osc52 "github.com/aymanbagabas/go-osc52/v2"
	"github.com/harnstore/harn-cli/internal/ports"
)

var errNilOutput = errors.New("osc52 output writer is nil")

// Copier emits an OSC 52 escape sequence so the hosting terminal sets the
// clipboard itself. This is the fallback path: it needs no display server
// and works over SSH, and the sequence is transient terminal output with
// nothing left behind on any exit path.
type Copier struct {
	out io.Writer
}

var _ ports.Clipboard = (*Copier)(nil)

func NewCopier(out io.Writer) (*Copier, error) {
	if out == nil {
		return nil, errNilOutput
	}

	return &Copier{out: out}, nil
}

func (c *Copier) Copy(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if _, err := osc52.New(text).WriteTo(c.out); err != nil {
		return fmt.Errorf("write osc52 sequence: %w", err)
	}

	return nil
}
