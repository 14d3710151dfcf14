package entities

// ReportOptions controls how a check result is rendered.
type ReportOptions struct {
	Format Format
	Output Output
	Pre    bool
}

// UnitReport is the check result for one source file.
type UnitReport struct {
	Path     string
	Packages []Package
}
