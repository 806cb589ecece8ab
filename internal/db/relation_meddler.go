package db

import (
	"fmt"

	"github.com/goran-ethernal/OrderScope/pkg/liquidation"
	"github.com/russross/meddler"
)

func init() {
	meddler.Register("relation", RelationMeddler{})
}

// RelationMeddler stores a liquidation.Relation as its name and rejects
// unknown names on both read and write.
type RelationMeddler struct{}

func (RelationMeddler) PreRead(fieldAddr any) (scanTarget any, err error) {
	return new(string), nil
}

func (RelationMeddler) PostRead(fieldAddr, scanTarget any) error {
	s, ok := scanTarget.(*string)
	if !ok {
		return fmt.Errorf("expected *string, got %T", scanTarget)
	}

	rel, err := liquidation.ParseRelation(*s)
	if err != nil {
		return err
	}

	ptr, ok := fieldAddr.(*liquidation.Relation)
	if !ok {
		return fmt.Errorf("expected *liquidation.Relation, got %T", fieldAddr)
	}
	*ptr = rel
	return nil
}

func (RelationMeddler) PreWrite(field any) (saveValue any, err error) {
	rel, ok := field.(liquidation.Relation)
	if !ok {
		return nil, fmt.Errorf("expected liquidation.Relation, got %T", field)
	}
	if !rel.IsValid() {
		return nil, fmt.Errorf("invalid relation %q", rel)
	}
	return rel.String(), nil
}
