package repositories

import (
	domainRepos "github.com/rios0rios0/packcheck/internal/domain/repositories"
)

// SourceRegistry manages the registered declaration formats and solution formats.
type SourceRegistry struct {
	sources   map[domainRepos.SourceKind]domainRepos.SourceRepository
	solutions map[domainRepos.SolutionKind]domainRepos.SolutionRepository
}

// NewSourceRegistry creates an empty source registry.
func NewSourceRegistry() *SourceRegistry {
	return &SourceRegistry{
		sources:   make(map[domainRepos.SourceKind]domainRepos.SourceRepository),
		solutions: make(map[domainRepos.SolutionKind]domainRepos.SolutionRepository),
	}
}

// Register adds a source under its kind.
func (r *SourceRegistry) Register(s domainRepos.SourceRepository) {
	r.sources[s.Kind()] = s
}

// RegisterSolution adds a solution format under its kind.
func (r *SourceRegistry) RegisterSolution(s domainRepos.SolutionRepository) {
	r.solutions[s.Kind()] = s
}

// Get returns the source with the given kind, or nil if not registered.
func (r *SourceRegistry) Get(kind domainRepos.SourceKind) domainRepos.SourceRepository {
	return r.sources[kind]
}

// Solution returns the solution format with the given kind, or nil if not registered.
func (r *SourceRegistry) Solution(kind domainRepos.SolutionKind) domainRepos.SolutionRepository {
	return r.solutions[kind]
}
