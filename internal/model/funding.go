// Package model defines domain models for channel funding verification.
package model

import (
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

// FundingOutput is the on-chain output backing a channel's capacity.
type FundingOutput struct {
	TxID     chainhash.Hash
	Index    uint16
	Value    btcutil.Amount
	PkScript []byte
}

// NewFundingOutput copies the output at index out of tx so the transaction
// can be released. The caller guarantees index is in range.
func NewFundingOutput(tx *wire.MsgTx, index uint16) *FundingOutput {
	txOut := tx.TxOut[index]
	return &FundingOutput{
		TxID:     tx.TxHash(),
		Index:    index,
		Value:    btcutil.Amount(txOut.Value),
		PkScript: append([]byte(nil), txOut.PkScript...),
	}
}

// OutPoint returns the outpoint spending this output would reference.
func (o *FundingOutput) OutPoint() wire.OutPoint {
	return *wire.NewOutPoint(&o.TxID, uint32(o.Index))
}
