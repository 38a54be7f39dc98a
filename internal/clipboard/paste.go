package clipboard

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-vgo/robotgo"
	"go.uber.org/zap"
)

// Paster pushes a transcript into the focused window through the
// clipboard: save whatever is there, copy the text, send the paste
// chord, then put the old contents back. The function fields exist so
// tests can run without a display server.
type Paster struct {
	Read    func() (string, error)
	Write   func(ctx context.Context, value string) error
	Press   func() error
	Settle  time.Duration
	Logger  *zap.Logger
	Restore bool
}

// NewPaster builds a Paster wired to robotgo and the system clipboard
// commands. Terminal-friendly Ctrl+Shift+V is the paste chord; most
// dictation targets here are terminals and editors that treat plain
// Ctrl+V as something else.
func NewPaster(logger *zap.Logger) *Paster {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Paster{
		Read:  robotgo.ReadAll,
		Write: CopyText,
		Press: func() error {
			return robotgo.KeyTap("v", "ctrl", "shift")
		},
		Settle:  150 * time.Millisecond,
		Logger:  logger,
		Restore: true,
	}
}

// PasteText copies value and pastes it at the cursor. Empty values are
// skipped. Clipboard restore failures are logged, never returned: the
// transcript already landed, which is what matters.
func (p *Paster) PasteText(ctx context.Context, value string) error {
	if strings.TrimSpace(value) == "" {
		return nil
	}

	logger := p.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	var saved string
	var haveSaved bool
	if p.Restore && p.Read != nil {
		if prev, err := p.Read(); err == nil {
			saved, haveSaved = prev, true
		} else {
			logger.Debug("could not read clipboard for restore", zap.Error(err))
		}
	}

	if err := p.Write(ctx, value); err != nil {
		return fmt.Errorf("copy transcript: %w", err)
	}

	if err := p.Press(); err != nil {
		return fmt.Errorf("send paste keystroke: %w", err)
	}

	if haveSaved {
		// give the target application time to read the selection
		time.Sleep(p.Settle)
		if err := p.Write(ctx, saved); err != nil {
			logger.Debug("could not restore clipboard", zap.Error(err))
		}
	}

	return nil
}
