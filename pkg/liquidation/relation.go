package liquidation

import "fmt"

// Relation names the ordering relation a liquidation is checked for.
type Relation string

const (
	// RelationFrontrun: the liquidation executed immediately before the oracle price update.
	RelationFrontrun Relation = "frontrun"

	// RelationBackrun: the liquidation executed immediately after the oracle price update.
	RelationBackrun Relation = "backrun"
)

// String returns the string representation of Relation.
func (r Relation) String() string {
	return string(r)
}

// IsValid checks if the Relation value is valid.
func (r Relation) IsValid() bool {
	switch r {
	case RelationFrontrun, RelationBackrun:
		return true
	default:
		return false
	}
}

// Step returns the scan direction within a block: +1 looks at later
// transactions (frontrun), -1 at earlier ones (backrun).
func (r Relation) Step() int {
	if r == RelationBackrun {
		return -1
	}
	return 1
}

// ParseRelation parses a string into a Relation.
func ParseRelation(s string) (Relation, error) {
	r := Relation(s)
	if !r.IsValid() {
		return "", fmt.Errorf("invalid relation: %s (must be one of: frontrun, backrun)", s)
	}
	return r, nil
}
