package types

import "encoding/json"

// KeyLiquidateCollateral identifies a liquidation request in an execute message.
const KeyLiquidateCollateral = "liquidate_collateral"

// Message is a decoded execute message. Its shape is inspected by key only.
type Message map[string]json.RawMessage

// IsLiquidation reports whether the message requests a collateral liquidation.
func (m Message) IsLiquidation() bool {
	_, ok := m[KeyLiquidateCollateral]
	return ok
}

// Raw re-encodes the message for storage and output.
func (m Message) Raw() (json.RawMessage, error) {
	return json.Marshal(m)
}
