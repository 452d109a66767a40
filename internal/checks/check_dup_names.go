package checks

type DupNamesCheck struct{}

func (c *DupNamesCheck) ID() string {
	return "dup-names"
}

func (c *DupNamesCheck) Column() string {
	return "DupNames"
}

func (c *DupNamesCheck) Description() string {
	return "Verifies that the duplicate capture group name conformance case was exercised. The test marker must appear in the captured test output under one of its per-runner spellings."
}

func (c *DupNamesCheck) Aliases() []string {
	return []string{
		"test_semantic_duplicate_capture_group",
		"test_semantic_duplicates", // rust test name
		"semantic_duplicates",
		"duplicate_capture_group",
		"dup_names",
		"DupNames",
		"semantic_duplicates.json", // runners that print the fixture filename
	}
}

func init() {
	Register(&DupNamesCheck{})
}
