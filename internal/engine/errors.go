package engine

import "fmt"

// ContractError is panicked for caller-contract violations (spec §7 kind
// 1). Invariant failures detected by Check() are returned as a
// *ContractError; Check() does not panic on them. These are programmer
// errors; the engine does not attempt to recover from them.
type ContractError struct {
	msg string
}

func (e *ContractError) Error() string { return e.msg }

func contractErrorf(format string, args ...any) *ContractError {
	return &ContractError{msg: fmt.Sprintf(format, args...)}
}

// panicContract raises a caller-contract violation. The engine aborts the
// current operation; nothing is retried or repackaged (spec §7).
func panicContract(format string, args ...any) {
	panic(contractErrorf(format, args...))
}
