//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/packcheck/internal/domain/commands"
)

// StubUpgradeCommand is a stub implementation of commands.Upgrade.
type StubUpgradeCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	LastOpts         commands.UpgradeOptions
}

var _ commands.Upgrade = (*StubUpgradeCommand)(nil)

func (s *StubUpgradeCommand) Execute(_ context.Context, opts commands.UpgradeOptions) error {
	s.ExecuteCallCount++
	s.LastOpts = opts
	return s.ExecuteErr
}
