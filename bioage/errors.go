/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package bioage

import (
	"errors"
	"fmt"
)

// Failure kinds. Every error returned by this package matches exactly one of
// these with errors.Is.
var (
	ErrDomain                = errors.New("argument outside the valid domain of the model")
	ErrUnrecognizedCategory  = errors.New("unrecognized category")
	ErrIncompleteComputation = errors.New("incomplete computation")
	ErrInvalidPanel          = errors.New("invalid panel")
)

// Stage identifies the step of an evaluation that failed.
type Stage string

// Stage values.
const (
	StageValidate  Stage = "validate"
	StagePhenoAge  Stage = "phenoage"
	StageVoitenko  Stage = "voitenko"
	StageAggregate Stage = "aggregate"
)

// ComputationError is the typed failure result of an estimator, the
// aggregator or panel validation.
type ComputationError struct {
	Stage  Stage
	Kind   error
	Detail string
	// Err is the underlying failure, set when an aggregate fails because a
	// sub-estimate failed.
	Err error
}

func (e *ComputationError) Error() string {
	msg := fmt.Sprintf("%s: %v", e.Stage, e.Kind)
	if e.Detail != "" {
		msg += ": " + e.Detail
	}

	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}

	return msg
}

// Unwrap exposes both the kind and the cause, so a failed evaluation matches
// ErrIncompleteComputation as well as the kind of the estimator that failed.
func (e *ComputationError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}

	return []error{e.Kind, e.Err}
}

func domainError(stage Stage, format string, args ...interface{}) error {
	return &ComputationError{Stage: stage, Kind: ErrDomain, Detail: fmt.Sprintf(format, args...)}
}

func invalidPanel(format string, args ...interface{}) error {
	return &ComputationError{Stage: StageValidate, Kind: ErrInvalidPanel, Detail: fmt.Sprintf(format, args...)}
}
