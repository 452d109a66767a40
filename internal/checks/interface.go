package checks

// Check is a named semantic requirement: a specific conformance test case
// whose marker must appear somewhere in a binding's captured test output.
// Presence of a marker is a proxy for "this behavior was actually exercised",
// not merely "tests passed in aggregate".
type Check interface {
	ID() string

	// Column is the short label used for this check's report column.
	Column() string

	Description() string

	// Aliases are the literal markers that satisfy this check, covering the
	// different spellings the various runners print for the same test case.
	Aliases() []string
}
