// Package scid encodes and decodes Lightning short channel identifiers.
package scid

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	heightBits      = 24
	txIndexBits     = 24
	outputIndexBits = 16

	// MaxBlockHeight is the largest height representable in a short channel id.
	MaxBlockHeight = 1<<heightBits - 1

	// MaxTxIndex is the largest transaction index representable in a short channel id.
	MaxTxIndex = 1<<txIndexBits - 1

	// MaxOutputIndex is the largest output index representable in a short channel id.
	MaxOutputIndex = 1<<outputIndexBits - 1
)

// ShortChannelID locates a channel funding output on chain.
type ShortChannelID struct {
	BlockHeight uint32
	TxIndex     uint32
	OutputIndex uint16
}

// Decode splits a packed id into block height, transaction index and output index.
func Decode(id uint64) (height uint32, txIndex uint32, outputIndex uint16) {
	height = uint32(id >> (txIndexBits + outputIndexBits))
	txIndex = uint32(id>>outputIndexBits) & MaxTxIndex
	outputIndex = uint16(id & MaxOutputIndex)
	return height, txIndex, outputIndex
}

// Encode packs the triple into an id. Height and transaction index are masked to
// 24 bits.
func Encode(height uint32, txIndex uint32, outputIndex uint16) uint64 {
	return uint64(height&MaxBlockHeight)<<(txIndexBits+outputIndexBits) |
		uint64(txIndex&MaxTxIndex)<<outputIndexBits |
		uint64(outputIndex)
}

// FromUint64 decodes id into a ShortChannelID.
func FromUint64(id uint64) ShortChannelID {
	height, txIndex, outputIndex := Decode(id)
	return ShortChannelID{
		BlockHeight: height,
		TxIndex:     txIndex,
		OutputIndex: outputIndex,
	}
}

// ToUint64 packs the ShortChannelID.
func (s ShortChannelID) ToUint64() uint64 {
	return Encode(s.BlockHeight, s.TxIndex, s.OutputIndex)
}

// String renders the id as HEIGHTxTXINDEXxOUTPUT.
func (s ShortChannelID) String() string {
	return fmt.Sprintf("%dx%dx%d", s.BlockHeight, s.TxIndex, s.OutputIndex)
}

// Parse accepts either the HEIGHTxTXINDEXxOUTPUT form or a decimal packed id.
func Parse(value string) (ShortChannelID, error) {
	value = strings.TrimSpace(value)
	parts := strings.Split(value, "x")
	switch len(parts) {
	case 1:
		id, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			return ShortChannelID{}, fmt.Errorf("parse short channel id %q: %w", value, err)
		}
		return FromUint64(id), nil
	case 3:
	default:
		return ShortChannelID{}, fmt.Errorf("short channel id %q: expected 3 parts, got %d", value, len(parts))
	}

	height, err := strconv.ParseUint(parts[0], 10, heightBits)
	if err != nil {
		return ShortChannelID{}, fmt.Errorf("short channel id %q block height: %w", value, err)
	}
	txIndex, err := strconv.ParseUint(parts[1], 10, txIndexBits)
	if err != nil {
		return ShortChannelID{}, fmt.Errorf("short channel id %q tx index: %w", value, err)
	}
	outputIndex, err := strconv.ParseUint(parts[2], 10, outputIndexBits)
	if err != nil {
		return ShortChannelID{}, fmt.Errorf("short channel id %q output index: %w", value, err)
	}

	return ShortChannelID{
		BlockHeight: uint32(height),
		TxIndex:     uint32(txIndex),
		OutputIndex: uint16(outputIndex),
	}, nil
}
