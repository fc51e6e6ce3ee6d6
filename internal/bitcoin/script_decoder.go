package bitcoin

import (
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/txscript"
)

// ScriptDecoder renders funding scripts for humans.
type ScriptDecoder struct {
	params *chaincfg.Params
}

// NewScriptDecoder builds a decoder for the given chain.
func NewScriptDecoder(params *chaincfg.Params) *ScriptDecoder {
	return &ScriptDecoder{params: params}
}

// Describe returns the script class and any addresses the script pays to.
// Channel funding outputs are normally P2WSH or P2TR.
func (d *ScriptDecoder) Describe(pkScript []byte) (txscript.ScriptClass, []string, error) {
	class, addrs, _, err := txscript.ExtractPkScriptAddrs(pkScript, d.params)
	if err != nil {
		return txscript.NonStandardTy, nil, err
	}

	result := make([]string, 0, len(addrs))
	for _, addr := range addrs {
		result = append(result, addr.EncodeAddress())
	}
	return class, result, nil
}
