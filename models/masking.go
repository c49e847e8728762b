package models

// MaskingOutcome is the result of a maskData scan: the raw verdict plus what
// was derived from it.
type MaskingOutcome struct {
	Verdict ScanVerdict

	// DLPDetected is true when DLP fired on either side or at the top level.
	DLPDetected bool

	// MaskedContent is the masked text when the verdict carried one,
	// otherwise the original input unchanged.
	MaskedContent string

	// MaskApplied is true iff MaskedContent came from the verdict.
	MaskApplied bool
}
