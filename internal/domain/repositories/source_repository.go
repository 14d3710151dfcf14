package repositories

import "github.com/rios0rios0/packcheck/internal/domain/entities"

// SourceKind identifies a dependency declaration format.
type SourceKind string

const (
	SourceProject         SourceKind = "csproj"
	SourceCentralPackages SourceKind = "cpm"
	SourceFileBasedApp    SourceKind = "fba"
)

// SourceRepository reads and rewrites the dependency declarations of one file format.
type SourceRepository interface {
	// Kind returns the format handled by this repository.
	Kind() SourceKind

	// Detect reports whether dir holds a default candidate of this format.
	Detect(dir string) bool

	// Locate resolves the file to work on. An explicit path is taken relative to dir;
	// without it the default candidate in dir is searched.
	Locate(dir, explicit string) (string, error)

	// Extract returns the declared packages in document order.
	Extract(path string) ([]entities.Package, error)

	// Rewrite replaces the version of every package with a new version and returns the
	// resulting document. The file is written only when dryRun is false.
	Rewrite(path string, packages []entities.Package, dryRun bool) ([]byte, error)
}
