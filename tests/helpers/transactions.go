package helpers

import (
	"encoding/base64"

	"github.com/goran-ethernal/OrderScope/internal/types"
)

const (
	// OracleFeeder is the oracle price feeder account used across tests.
	OracleFeeder = "terra1zue382qey9l5uhhwcwumjhmsne49a0agwhd60d"

	// Liquidator and Liquidator2 are liquidator accounts used across tests.
	Liquidator  = "terra18kgwjqrm7mcnlzcy7l8h7awnn7fs2pvdl2tpm9"
	Liquidator2 = "terra13wg8aj26kvzu2q0xwthkttwul4ud72t6y6z92r"

	// Bystander sends unrelated transactions.
	Bystander = "terra1dx8p5gkegpcamny5emt0z069cm6ekjuwxhqgdg"

	LiquidationMsg = `{"liquidate_collateral":{"borrower":"terra1gcvztv0gmzqgyy0ae7v7v3rt0ggzktup9qzdnv"}}`
	FeedPriceMsg   = `{"feed_price":{"prices":[["terra1swt4gfylaq02tsek3gunevyuwp2egtukhwrs4q","1.02"]]}}`
	SwapMsg        = `{"swap":{"offer_asset":{"amount":"1000"}}}`
)

// ExecuteTx builds a contract execution carrying the given JSON messages.
func ExecuteTx(hash string, height uint64, sender string, msgs ...string) *types.Transaction {
	encoded := make([]string, 0, len(msgs))
	for _, msg := range msgs {
		encoded = append(encoded, base64.StdEncoding.EncodeToString([]byte(msg)))
	}

	return &types.Transaction{
		Hash:   hash,
		Height: height,
		Events: []types.Event{{
			Kind: types.KindExecuteContract,
			Sub: []types.SubEvent{{
				Sender:     []types.EventAccount{{Account: types.Account{ID: sender}}},
				Additional: &types.Additional{ExecuteMessage: encoded},
			}},
		}},
	}
}

// LiquidationTx builds a liquidation submitted by sender.
func LiquidationTx(hash string, height uint64, sender string) *types.Transaction {
	return ExecuteTx(hash, height, sender, LiquidationMsg)
}

// PriceTx builds an oracle price update submitted by sender.
func PriceTx(hash string, height uint64, sender string) *types.Transaction {
	return ExecuteTx(hash, height, sender, FeedPriceMsg)
}

// TransferTx builds a plain token transfer.
func TransferTx(hash string, height uint64, sender string) *types.Transaction {
	return &types.Transaction{
		Hash:   hash,
		Height: height,
		Events: []types.Event{{
			Kind: "transfer",
			Sub: []types.SubEvent{{
				Sender: []types.EventAccount{{Account: types.Account{ID: sender}}},
			}},
		}},
	}
}
