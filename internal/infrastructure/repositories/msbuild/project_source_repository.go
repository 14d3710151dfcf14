package msbuild

import (
	"fmt"
	"os"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/packcheck/internal/domain/entities"
	"github.com/rios0rios0/packcheck/internal/domain/repositories"
	"github.com/rios0rios0/packcheck/internal/infrastructure/repositories/files"
)

// ProjectSourceRepository handles PackageReference declarations of a .csproj file.
type ProjectSourceRepository struct {
	xmlSource
}

func NewProjectSourceRepository() repositories.SourceRepository {
	return &ProjectSourceRepository{xmlSource{
		kind:        repositories.SourceProject,
		elementName: "PackageReference",
		lookup:      files.Lookup{Kind: ".csproj", Pattern: "*.csproj", Option: "--csproj-file"},
	}}
}

// CentralPackageSourceRepository handles PackageVersion declarations of Directory.Packages.props.
type CentralPackageSourceRepository struct {
	xmlSource
}

func NewCentralPackageSourceRepository() repositories.SourceRepository {
	return &CentralPackageSourceRepository{xmlSource{
		kind:        repositories.SourceCentralPackages,
		elementName: "PackageVersion",
		lookup: files.Lookup{
			Kind:    "Directory.Packages.props",
			Pattern: "Directory.Packages.props",
			Option:  "--cpm-file",
		},
	}}
}

// xmlSource is the MSBuild document handling shared by both XML formats.
type xmlSource struct {
	kind        repositories.SourceKind
	elementName string
	lookup      files.Lookup
}

func (s *xmlSource) Kind() repositories.SourceKind { return s.kind }

func (s *xmlSource) Detect(dir string) bool {
	return len(s.lookup.Candidates(dir)) > 0
}

func (s *xmlSource) Locate(dir, explicit string) (string, error) {
	return s.lookup.Resolve(dir, explicit)
}

func (s *xmlSource) Extract(path string) ([]entities.Package, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	logger.Debugf("Reading %s declarations from %s", s.elementName, path)

	packages, err := extractPackages(content, s.elementName)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return packages, nil
}

func (s *xmlSource) Rewrite(path string, packages []entities.Package, dryRun bool) ([]byte, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	rewritten, err := rewriteVersions(content, s.elementName, packages)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if dryRun {
		return rewritten, nil
	}

	if err = files.WriteAtomic(path, rewritten); err != nil {
		return nil, err
	}
	logger.Debugf("Updated %d packages in %s", len(packages), path)
	return rewritten, nil
}
