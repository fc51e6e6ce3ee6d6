// Package bitcoin implements the blockchain data sources used by the verifier.
package bitcoin

import (
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/goodnatureofminers/chanverifier/internal/model"
)

// ChainParams maps a network name to its chain parameters.
func ChainParams(network model.Network) (*chaincfg.Params, error) {
	switch strings.ToLower(string(network)) {
	case string(model.Mainnet), "main", "bitcoin":
		return &chaincfg.MainNetParams, nil
	case string(model.Testnet), "testnet3":
		return &chaincfg.TestNet3Params, nil
	case string(model.Regtest):
		return &chaincfg.RegressionNetParams, nil
	case string(model.Signet):
		return &chaincfg.SigNetParams, nil
	case "simnet":
		return &chaincfg.SimNetParams, nil
	default:
		return nil, fmt.Errorf("unsupported network %q", network)
	}
}
