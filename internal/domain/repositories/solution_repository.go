package repositories

// SolutionKind identifies a solution file format.
type SolutionKind string

const (
	SolutionSln  SolutionKind = "sln"
	SolutionSlnx SolutionKind = "slnx"
)

// SolutionRepository enumerates the projects of a solution file.
type SolutionRepository interface {
	Kind() SolutionKind
	Detect(dir string) bool
	Locate(dir, explicit string) (string, error)

	// ProjectPaths returns the project files of the solution, resolved against the solution's directory.
	ProjectPaths(path string) ([]string, error)
}
