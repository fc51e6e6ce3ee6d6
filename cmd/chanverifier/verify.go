package main

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/chanverifier/internal/bitcoin"
	"github.com/goodnatureofminers/chanverifier/internal/model"
	"github.com/goodnatureofminers/chanverifier/internal/verifier"
	"github.com/goodnatureofminers/chanverifier/pkg/scid"
	"github.com/goodnatureofminers/chanverifier/pkg/workerpool"
	"go.uber.org/zap"
)

type utxoLookup interface {
	GetUTXO(chainHash chainhash.Hash, shortChanID uint64) *verifier.PendingLookup
}

func parseChannels(values []string) ([]scid.ShortChannelID, error) {
	channels := make([]scid.ShortChannelID, 0, len(values))
	for _, value := range values {
		channel, err := scid.Parse(value)
		if err != nil {
			return nil, err
		}
		channels = append(channels, channel)
	}
	return channels, nil
}

type channelResult struct {
	channel scid.ShortChannelID
	output  *model.FundingOutput
	err     error
}

type verificationReport []channelResult

// verifyChannels issues one asynchronous lookup per channel and waits for all
// of them, at most workers at a time.
func verifyChannels(
	ctx context.Context,
	v utxoLookup,
	chainHash chainhash.Hash,
	channels []scid.ShortChannelID,
	workers int,
) verificationReport {
	results := workerpool.Collect(ctx, workers, channels,
		func(ctx context.Context, channel scid.ShortChannelID) (*model.FundingOutput, error) {
			lookup := v.GetUTXO(chainHash, channel.ToUint64())
			select {
			case <-lookup.Done():
			case <-ctx.Done():
				return nil, ctx.Err()
			}
			return lookup.Result()
		})

	report := make(verificationReport, 0, len(results))
	for i, res := range results {
		report = append(report, channelResult{channel: channels[i], output: res.Value, err: res.Err})
	}
	return report
}

func (r verificationReport) log(logger *zap.Logger, decoder *bitcoin.ScriptDecoder) error {
	failed := 0
	for _, res := range r {
		if res.err != nil {
			failed++
			logger.Error("channel not verified", zap.Stringer("scid", res.channel), zap.Error(res.err))
			continue
		}

		outPoint := res.output.OutPoint()
		fields := []zap.Field{
			zap.Stringer("scid", res.channel),
			zap.Stringer("outpoint", &outPoint),
			zap.Int64("satoshis", int64(res.output.Value)),
			zap.Stringer("amount", res.output.Value),
		}
		class, addrs, err := decoder.Describe(res.output.PkScript)
		if err != nil {
			logger.Warn("could not decode funding script", zap.Stringer("scid", res.channel), zap.Error(err))
		} else {
			fields = append(fields, zap.Stringer("script_class", class), zap.Strings("addresses", addrs))
		}
		logger.Info("channel verified", fields...)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d channels failed verification", failed, len(r))
	}
	return nil
}

// logGraph stands in for a channel graph: it accepts every channel whose
// funding output was found.
type logGraph struct {
	logger   *zap.Logger
	accepted atomic.Int64
	rejected atomic.Int64
}

func newLogGraph(logger *zap.Logger) *logGraph {
	return &logGraph{logger: logger.Named("graph")}
}

func (g *logGraph) ApplyFundingLookup(chainHash chainhash.Hash, shortChanID uint64, output *model.FundingOutput, err error) bool {
	channel := scid.FromUint64(shortChanID)
	if err != nil {
		g.rejected.Add(1)
		g.logger.Debug("channel rejected", zap.Stringer("scid", channel), zap.Stringer("chain_hash", chainHash), zap.Error(err))
		return false
	}
	g.accepted.Add(1)
	g.logger.Debug("channel accepted", zap.Stringer("scid", channel), zap.Int64("satoshis", int64(output.Value)))
	return true
}

type eventCounter struct {
	logger *zap.Logger
	wakes  atomic.Int64
}

func newEventCounter(logger *zap.Logger) *eventCounter {
	return &eventCounter{logger: logger.Named("peerEvents")}
}

func (c *eventCounter) ProcessEvents() {
	c.logger.Debug("processing peer events", zap.Int64("wakes", c.wakes.Add(1)))
}

// logSummary reports what the graph and the event pump saw. Call it after the
// verifier has stopped so every wake is counted.
func logSummary(logger *zap.Logger, graph *logGraph, pump *eventCounter) {
	logger.Info("verification finished",
		zap.Int64("accepted", graph.accepted.Load()),
		zap.Int64("rejected", graph.rejected.Load()),
		zap.Int64("pump_wakes", pump.wakes.Load()))
}
