package checks

type RangesCheck struct{}

func (c *RangesCheck) ID() string {
	return "ranges"
}

func (c *RangesCheck) Column() string {
	return "Ranges"
}

func (c *RangesCheck) Description() string {
	return "Verifies that the character range conformance case was exercised. The test marker must appear in the captured test output under one of its per-runner spellings."
}

func (c *RangesCheck) Aliases() []string {
	return []string{
		"test_semantic_ranges",
		"semantic_ranges",
		"Ranges",
		"semantic_ranges.json", // runners that print the fixture filename
	}
}

func init() {
	Register(&RangesCheck{})
}
