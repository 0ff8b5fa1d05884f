package model

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrInvalidDuration   = errors.New("duration must be a positive multiple of the slot width")
	ErrNoParticipants    = errors.New("availability model has no participants")
	ErrInsufficientSlots = errors.New("meeting does not fit in any day")
)

// OracleContractViolation signals that a solver returned an assignment the encoding rules out.
// It indicates a defect in either the encoder or the solver and aborts the enumeration.
type OracleContractViolation struct {
	Call   int // 1-based solver invocation that produced the assignment
	Reason string
}

func (err *OracleContractViolation) Error() string {
	return fmt.Sprintf("solver contract violated on call %d: %v", err.Call, err.Reason)
}
