//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/packcheck/internal/domain/entities"
	"github.com/rios0rios0/packcheck/internal/domain/repositories"
)

// StubConfirmer implements repositories.Confirmer with scripted answers keyed by question.
// Questions without an answer are declined.
type StubConfirmer struct {
	Answers    map[string]bool
	ConfirmErr error
	Questions  []string
}

var _ repositories.Confirmer = (*StubConfirmer)(nil)

func (s *StubConfirmer) Confirm(question string) (bool, error) {
	s.Questions = append(s.Questions, question)
	return s.Answers[question], s.ConfirmErr
}

// StubSettingsRepository implements repositories.SettingsRepository with a fixed result.
type StubSettingsRepository struct {
	Settings   *entities.Settings
	Path       string
	LoadErr    error
	LoadedDirs []string
}

var _ repositories.SettingsRepository = (*StubSettingsRepository)(nil)

func (s *StubSettingsRepository) Load(dir string) (*entities.Settings, string, error) {
	s.LoadedDirs = append(s.LoadedDirs, dir)
	return s.Settings, s.Path, s.LoadErr
}
