package commands

import (
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/packcheck/internal/domain/entities"
	"github.com/rios0rios0/packcheck/internal/domain/repositories"
	infraRepos "github.com/rios0rios0/packcheck/internal/infrastructure/repositories"
)

// unit is one dependency declaration file to process.
type unit struct {
	source   repositories.SourceRepository
	explicit string // path given by the user or enumerated from a solution, empty for discovery
}

// unitPlan is the list of files a command works on.
type unitPlan struct {
	units    []unit
	solution string // solution file the units came from, empty for a single file
}

// resolveUnits picks the declaration files: explicit options first (project, solution,
// solution-x, central packages, file-based app), then discovery in the working directory
// (central packages, solution, solution-x, single project).
func resolveUnits(sources *infraRepos.SourceRegistry, opts SourceOptions) (unitPlan, error) {
	switch {
	case opts.CsProjFile != "":
		return singleUnit(sources, repositories.SourceProject, opts.CsProjFile), nil
	case opts.SlnFile != "":
		return solutionUnits(sources, repositories.SolutionSln, opts.WorkDir, opts.SlnFile)
	case opts.SlnxFile != "":
		return solutionUnits(sources, repositories.SolutionSlnx, opts.WorkDir, opts.SlnxFile)
	case opts.CpmFile != "":
		return singleUnit(sources, repositories.SourceCentralPackages, opts.CpmFile), nil
	case opts.FbaFile != "":
		return singleUnit(sources, repositories.SourceFileBasedApp, opts.FbaFile), nil
	}

	if sources.Get(repositories.SourceCentralPackages).Detect(opts.WorkDir) {
		logger.Debugf("Using central package management in %s", opts.WorkDir)
		return singleUnit(sources, repositories.SourceCentralPackages, ""), nil
	}
	for _, kind := range []repositories.SolutionKind{repositories.SolutionSln, repositories.SolutionSlnx} {
		if sources.Solution(kind).Detect(opts.WorkDir) {
			return solutionUnits(sources, kind, opts.WorkDir, "")
		}
	}
	return singleUnit(sources, repositories.SourceProject, ""), nil
}

func singleUnit(sources *infraRepos.SourceRegistry, kind repositories.SourceKind, explicit string) unitPlan {
	return unitPlan{units: []unit{{source: sources.Get(kind), explicit: explicit}}}
}

func solutionUnits(
	sources *infraRepos.SourceRegistry,
	kind repositories.SolutionKind,
	dir, explicit string,
) (unitPlan, error) {
	solution := sources.Solution(kind)
	path, err := solution.Locate(dir, explicit)
	if err != nil {
		return unitPlan{}, err
	}

	projects, err := solution.ProjectPaths(path)
	if err != nil {
		return unitPlan{}, err
	}
	logger.Debugf("Found %d projects in %s", len(projects), path)

	project := sources.Get(repositories.SourceProject)
	plan := unitPlan{solution: path, units: make([]unit, 0, len(projects))}
	for _, projectPath := range projects {
		plan.units = append(plan.units, unit{source: project, explicit: projectPath})
	}
	return plan, nil
}

// run executes fn for every unit. A failing single file aborts the command; a failing
// project of a solution is reported and the remaining projects still run.
func (p unitPlan) run(reporter repositories.Reporter, fn func(unit) error) error {
	if p.solution == "" {
		return fn(p.units[0])
	}
	if len(p.units) == 0 {
		reporter.Warnf("Could not find any projects in %s", p.solution)
		return nil
	}

	failed := make(map[string]error)
	for _, u := range p.units {
		if err := fn(u); err != nil {
			reporter.Warnf("%v", err)
			failed[u.explicit] = err
		}
	}
	if len(failed) > 0 {
		return &entities.UnitsFailedError{Total: len(p.units), Failed: failed}
	}
	return nil
}
