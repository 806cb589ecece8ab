package types

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedTransaction is returned when a transaction received from the
	// search service lacks fields every transaction must carry.
	ErrMalformedTransaction = errors.New("malformed transaction")

	// ErrStructuralMismatch is the parent of errors raised when a transaction
	// does not have the nested shape an operation expects.
	ErrStructuralMismatch = errors.New("transaction structure mismatch")

	// ErrNoExecuteMessages is returned by Messages for transactions that carry
	// no execute message list. Callers treat it as "no usable messages".
	ErrNoExecuteMessages = fmt.Errorf("%w: no execute messages", ErrStructuralMismatch)

	// ErrInvalidExecuteMessage is returned when an execute message is not
	// base64-encoded JSON.
	ErrInvalidExecuteMessage = errors.New("invalid execute message")
)
