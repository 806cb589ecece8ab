package liquidation

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRecord_FlagIsWriteOnce(t *testing.T) {
	rec := NewRecord("ABC", 10, 0, json.RawMessage(`{"liquidate_collateral":{}}`), "terra1liq", RelationFrontrun)
	require.False(t, rec.Flagged())

	rec.Flag()
	require.True(t, rec.Flagged())

	rec.Flag()
	require.True(t, rec.Flagged())
}

func TestRecord_MarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		relation Relation
		flag     bool
		want     string
	}{
		{
			name:     "frontrun key",
			relation: RelationFrontrun,
			flag:     true,
			want: `{"hash":"ABC","height":10,"message_index":1,"execute_message":{"liquidate_collateral":{}},` +
				`"sender":"terra1liq","frontrun":true}`,
		},
		{
			name:     "backrun key",
			relation: RelationBackrun,
			want: `{"hash":"ABC","height":10,"message_index":1,"execute_message":{"liquidate_collateral":{}},` +
				`"sender":"terra1liq","backrun":false}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := NewRecord("ABC", 10, 1, json.RawMessage(`{"liquidate_collateral":{}}`), "terra1liq", tt.relation)
			if tt.flag {
				rec.Flag()
			}

			data, err := json.Marshal(rec)
			require.NoError(t, err)
			require.JSONEq(t, tt.want, string(data))
		})
	}
}

func TestRecord_MarshalJSONInvalidRelation(t *testing.T) {
	rec := NewRecord("ABC", 10, 0, nil, "terra1liq", Relation("sideways"))

	_, err := json.Marshal(rec)
	require.Error(t, err)
}

func TestRestore(t *testing.T) {
	rec := Restore("ABC", 10, 0, nil, "terra1liq", RelationBackrun, true)
	require.True(t, rec.Flagged())
	require.Equal(t, RelationBackrun, rec.Relation)
}

func TestParseRelation(t *testing.T) {
	tests := []struct {
		input    string
		want     Relation
		wantStep int
		wantErr  bool
	}{
		{input: "frontrun", want: RelationFrontrun, wantStep: 1},
		{input: "backrun", want: RelationBackrun, wantStep: -1},
		{input: "sandwich", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseRelation(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
			require.Equal(t, tt.wantStep, got.Step())
		})
	}
}
