package cipher

// Pipeline stages reported by StageError.
const (
	StageDeriveKey      = "derive key"
	StageBuildBoard     = "build checkerboard"
	StageStripIndicator = "strip indicator"
	StageDecode         = "decode"
	StageEncode         = "encode"
)

// StageError records which pipeline stage rejected the record. The cause
// carries the semantic kind from vic/pkg/serrors.
type StageError struct {
	Stage string
	Err   error
}

func (e *StageError) Error() string { return e.Stage + ": " + e.Err.Error() }

func (e *StageError) Unwrap() error { return e.Err }

func stageErr(stage string, err error) error {
	return &StageError{Stage: stage, Err: err}
}
