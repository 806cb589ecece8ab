package liquidation

import (
	"encoding/json"
	"fmt"
)

// Record is one liquidate_collateral message sent by the liquidator, together
// with the outcome of the ordering check against the oracle feeder.
//
// The flag is write-once: it starts false and Flag can only move it to true.
type Record struct {
	Hash   string
	Height uint64
	// MessageIndex is the position of the message inside the transaction's
	// execute message list; a transaction may carry several liquidations.
	MessageIndex   int
	ExecuteMessage json.RawMessage
	Sender         string
	Relation       Relation

	flagged bool
}

// NewRecord creates an unflagged record.
func NewRecord(hash string, height uint64, msgIndex int, msg json.RawMessage, sender string, relation Relation) *Record {
	return &Record{
		Hash:           hash,
		Height:         height,
		MessageIndex:   msgIndex,
		ExecuteMessage: msg,
		Sender:         sender,
		Relation:       relation,
	}
}

// Flag marks the record as standing in its relation to the oracle update.
// Calling it more than once has no further effect.
func (r *Record) Flag() {
	r.flagged = true
}

// Flagged reports whether the record was flagged.
func (r *Record) Flagged() bool {
	return r.flagged
}

// Restore rebuilds a record read back from storage, including its flag.
func Restore(hash string, height uint64, msgIndex int, msg json.RawMessage,
	sender string, relation Relation, flagged bool) *Record {
	rec := NewRecord(hash, height, msgIndex, msg, sender, relation)
	rec.flagged = flagged
	return rec
}

// MarshalJSON encodes the record with the relation name as the flag key:
// {"hash", "height", "execute_message", "sender", "frontrun"|"backrun"}.
func (r *Record) MarshalJSON() ([]byte, error) {
	if !r.Relation.IsValid() {
		return nil, fmt.Errorf("record %s: invalid relation %q", r.Hash, r.Relation)
	}

	msg := r.ExecuteMessage
	if len(msg) == 0 {
		msg = json.RawMessage("null")
	}

	out := map[string]any{
		"hash":            r.Hash,
		"height":          r.Height,
		"message_index":   r.MessageIndex,
		"execute_message": msg,
		"sender":          r.Sender,
	}
	out[r.Relation.String()] = r.flagged

	return json.Marshal(out)
}
