package classify

// Verdict is the single categorical outcome for one binding's audit.
type Verdict string

const (
	VerdictCertified    Verdict = "CERTIFIED"
	VerdictFailExitCode Verdict = "FAIL (Exit Code)"
	VerdictFailSkips    Verdict = "FAIL (Skips)"
	VerdictFailWarnings Verdict = "FAIL (Warnings)"
	VerdictFailSemantic Verdict = "FAIL (Semantic)"

	// Assigned by the orchestrator for failures that preempt classification.
	VerdictFailSetup Verdict = "FAIL (Setup)"
	VerdictFailBuild Verdict = "FAIL (Build)"
	VerdictFailExec  Verdict = "FAIL (Exec)"
)

// Certified reports whether the verdict certifies the binding.
func (v Verdict) Certified() bool {
	return v == VerdictCertified
}

// Decide combines a test command's exit code, its output classification and
// the per-check semantic results into one verdict. First applicable wins:
// a non-zero exit code is reported even if the text scan is coincidentally
// clean, because process failure is the most authoritative signal and must
// not be masked.
func Decide(exitCode int, res Result, checkResults map[string]bool) Verdict {
	if exitCode != 0 {
		return VerdictFailExitCode
	}
	if res.Skips > 0 {
		return VerdictFailSkips
	}
	if res.Warnings > 0 {
		return VerdictFailWarnings
	}
	for _, satisfied := range checkResults {
		if !satisfied {
			return VerdictFailSemantic
		}
	}
	return VerdictCertified
}
