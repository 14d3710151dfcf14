package msbuild

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"regexp"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/packcheck/internal/domain/entities"
)

const (
	includeAttribute = "Include"
	versionAttribute = "Version"
)

var versionAttributePattern = regexp.MustCompile(`\s` + versionAttribute + `\s*=\s*("[^"]*"|'[^']*')`)

// packageElement is a start tag of a package declaration and its byte span in the document.
type packageElement struct {
	start   int64
	end     int64
	include string
	version string
}

// scanPackageElements walks the document and returns every start tag with the given local name.
// Unclosed or mismatched elements fail the scan.
func scanPackageElements(content []byte, elementName string) ([]packageElement, error) {
	decoder := xml.NewDecoder(bytes.NewReader(content))
	var elements []packageElement
	for {
		start := decoder.InputOffset()
		token, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			return elements, nil
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse XML: %w", err)
		}

		element, ok := token.(xml.StartElement)
		if !ok || element.Name.Local != elementName {
			continue
		}

		found := packageElement{start: start, end: decoder.InputOffset()}
		for _, attr := range element.Attr {
			switch attr.Name.Local {
			case includeAttribute:
				found.include = attr.Value
			case versionAttribute:
				found.version = attr.Value
			}
		}
		elements = append(elements, found)
	}
}

// extractPackages returns the declarations carrying both a name and a valid version.
func extractPackages(content []byte, elementName string) ([]entities.Package, error) {
	elements, err := scanPackageElements(content, elementName)
	if err != nil {
		return nil, err
	}

	packages := make([]entities.Package, 0, len(elements))
	for _, element := range elements {
		if element.include == "" || element.version == "" {
			continue
		}
		version, parseErr := entities.ParseVersion(element.version)
		if parseErr != nil {
			logger.Warnf("Skipping %s %s: %v", elementName, element.include, parseErr)
			continue
		}
		packages = append(packages, entities.NewPackage(element.include, version))
	}
	return packages, nil
}

// rewriteVersions replaces the Version attribute value of every matching declaration.
// All bytes outside those values are copied unchanged.
func rewriteVersions(content []byte, elementName string, packages []entities.Package) ([]byte, error) {
	elements, err := scanPackageElements(content, elementName)
	if err != nil {
		return nil, err
	}

	targets := make(map[string]entities.Package, len(packages))
	for _, pkg := range packages {
		if pkg.NewVersion != nil {
			targets[pkg.Name] = pkg
		}
	}

	var out bytes.Buffer
	out.Grow(len(content))
	last := 0
	for _, element := range elements {
		pkg, ok := targets[element.include]
		if !ok || element.version == "" {
			continue
		}

		tag := content[element.start:element.end]
		loc := versionAttributePattern.FindSubmatchIndex(tag)
		if loc == nil {
			continue
		}
		// the submatch includes the quotes
		valueStart := int(element.start) + loc[2] + 1
		valueEnd := int(element.start) + loc[3] - 1

		out.Write(content[last:valueStart])
		out.WriteString(pkg.NewVersion.String())
		last = valueEnd
	}
	out.Write(content[last:])
	return out.Bytes(), nil
}
