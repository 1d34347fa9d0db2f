package analyzer

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyDocument reports input the pipeline cannot work with at the
	// service boundary. The pipeline itself accepts empty text and
	// produces a zeroed result.
	ErrEmptyDocument = errors.New("document text is empty")

	// ErrInvalidOptions reports option values outside their valid range.
	ErrInvalidOptions = errors.New("invalid analyzer options")
)

// Pipeline stages for error reporting.
const (
	StageNormalize = "normalize"
	StageClassify  = "classify"
	StageExtract   = "extract"
	StageSegment   = "segment"
	StageSimplify  = "simplify"
)

// StageError identifies which mandatory pipeline stage failed. Stage
// failures before segmentation abort the whole analysis; they are never
// retried.
type StageError struct {
	Stage string
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("stage %s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

func stageErr(stage string, err error) error {
	if err == nil {
		return nil
	}
	return &StageError{Stage: stage, Err: err}
}
