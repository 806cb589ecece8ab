package types

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
)

// KindExecuteContract is the event kind of a CosmWasm contract execution.
const KindExecuteContract = "execute_contract"

// Block is the ordered list of transactions finalized at one height.
// Order is execution order.
type Block []*Transaction

// Transaction is a transaction as returned by the transaction search service.
// Only the fields the ordering analysis reads are decoded.
type Transaction struct {
	Hash   string  `json:"hash"`
	Height uint64  `json:"height"`
	Events []Event `json:"events"`
}

// Event is the top level event classification of a transaction.
type Event struct {
	Kind string     `json:"kind"`
	Sub  []SubEvent `json:"sub"`
}

// SubEvent carries the sender accounts and kind specific data.
type SubEvent struct {
	Sender     []EventAccount `json:"sender"`
	Additional *Additional    `json:"additional,omitempty"`
}

// EventAccount wraps an account reference.
type EventAccount struct {
	Account Account `json:"account"`
}

// Account identifies an on-chain account.
type Account struct {
	ID string `json:"id"`
}

// Additional holds kind specific payloads. For contract executions it carries
// the base64-encoded execute messages.
type Additional struct {
	ExecuteMessage []string `json:"execute_message"`
}

// Validate checks the fields the analysis relies on. Every transaction needs a
// hash, a height and a kind; contract executions additionally need a sender.
func (tx *Transaction) Validate() error {
	if tx == nil {
		return fmt.Errorf("%w: null entry", ErrMalformedTransaction)
	}
	if tx.Hash == "" {
		return fmt.Errorf("%w: missing hash at height %d", ErrMalformedTransaction, tx.Height)
	}
	if tx.Height == 0 {
		return fmt.Errorf("%w: %s has no height", ErrMalformedTransaction, tx.Hash)
	}
	if len(tx.Events) == 0 || tx.Events[0].Kind == "" {
		return fmt.Errorf("%w: %s has no event kind", ErrMalformedTransaction, tx.Hash)
	}
	if tx.IsContractExecute() && tx.Sender() == "" {
		return fmt.Errorf("%w: contract execution %s has no sender", ErrMalformedTransaction, tx.Hash)
	}
	return nil
}

// Kind returns the kind of the first event, or "" if there is none.
func (tx *Transaction) Kind() string {
	if len(tx.Events) == 0 {
		return ""
	}
	return tx.Events[0].Kind
}

// IsContractExecute reports whether the transaction is a contract execution.
func (tx *Transaction) IsContractExecute() bool {
	return tx.Kind() == KindExecuteContract
}

// Sender returns the first sender account id, or "" if there is none.
func (tx *Transaction) Sender() string {
	sub := tx.firstSub()
	if sub == nil || len(sub.Sender) == 0 {
		return ""
	}
	return sub.Sender[0].Account.ID
}

// IsFrom reports whether the transaction was sent by address. Addresses are
// compared verbatim.
func (tx *Transaction) IsFrom(address string) bool {
	sender := tx.Sender()
	return sender != "" && sender == address
}

// Messages decodes the execute messages of a contract execution.
// It returns ErrNoExecuteMessages if the transaction carries no message list.
func (tx *Transaction) Messages() ([]Message, error) {
	sub := tx.firstSub()
	if sub == nil || sub.Additional == nil || sub.Additional.ExecuteMessage == nil {
		return nil, fmt.Errorf("%s: %w", tx.Hash, ErrNoExecuteMessages)
	}

	encoded := sub.Additional.ExecuteMessage
	msgs := make([]Message, 0, len(encoded))
	for i, enc := range encoded {
		raw, err := base64.StdEncoding.DecodeString(enc)
		if err != nil {
			return nil, fmt.Errorf("%w: %s message %d: %w", ErrInvalidExecuteMessage, tx.Hash, i, err)
		}

		var msg Message
		if err := json.Unmarshal(raw, &msg); err != nil {
			return nil, fmt.Errorf("%w: %s message %d: %w", ErrInvalidExecuteMessage, tx.Hash, i, err)
		}
		msgs = append(msgs, msg)
	}

	return msgs, nil
}

func (tx *Transaction) firstSub() *SubEvent {
	if len(tx.Events) == 0 || len(tx.Events[0].Sub) == 0 {
		return nil
	}
	return &tx.Events[0].Sub[0]
}
