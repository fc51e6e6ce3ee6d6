package bitcoin

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/chanverifier/internal/chain"
	"go.uber.org/ratelimit"
)

// RESTClient reads blocks from the bitcoind REST interface (started with -rest=1).
type RESTClient struct {
	baseURL    *url.URL
	httpClient *http.Client
	limiter    ratelimit.Limiter
	metrics    SourceMetrics
}

// NewRESTClient constructs a client rooted at baseURL, e.g. http://127.0.0.1:8332/rest/.
// A nil limiter means requests are not paced.
func NewRESTClient(baseURL string, httpClient *http.Client, limiter ratelimit.Limiter, metrics SourceMetrics) (*RESTClient, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse rest url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("rest url scheme %q not supported", parsed.Scheme)
	}
	if parsed.Host == "" {
		return nil, errors.New("rest url missing host")
	}
	if metrics == nil {
		return nil, errors.New("rest client metrics is required")
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if limiter == nil {
		limiter = ratelimit.NewUnlimited()
	}

	return &RESTClient{
		baseURL:    parsed,
		httpClient: httpClient,
		limiter:    limiter,
		metrics:    metrics,
	}, nil
}

// BlockHashByHeight returns the raw hash bytes of the block at height.
func (c *RESTClient) BlockHashByHeight(ctx context.Context, height uint32) (hash []byte, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("block_hash_by_height", err, started)
	}()

	body, err := c.get(ctx, fmt.Sprintf("blockhashbyheight/%d.bin", height))
	if err != nil {
		return nil, fmt.Errorf("get block hash at height %d: %w", height, err)
	}
	if len(body) == 0 {
		return nil, fmt.Errorf("get block hash at height %d: %w", height, chain.ErrEmptyResponse)
	}
	return body, nil
}

// BlockByHash fetches and decodes the full block with the given hash.
func (c *RESTClient) BlockByHash(ctx context.Context, hash *chainhash.Hash) (data chain.BlockData, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("block_by_hash", err, started)
	}()

	body, err := c.get(ctx, fmt.Sprintf("block/%s.bin", hash))
	if err != nil {
		return chain.BlockData{}, fmt.Errorf("get block %s: %w", hash, err)
	}
	if len(body) == 0 {
		return chain.BlockData{}, fmt.Errorf("get block %s: %w", hash, chain.ErrEmptyResponse)
	}

	block := &wire.MsgBlock{}
	if err := block.Deserialize(bytes.NewReader(body)); err != nil {
		return chain.BlockData{}, fmt.Errorf("decode block %s: %w", hash, err)
	}
	return chain.FullBlock(block), nil
}

func (c *RESTClient) get(ctx context.Context, path string) ([]byte, error) {
	c.limiter.Take()

	endpoint := c.baseURL.JoinPath(path)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s returned status %d: %s", endpoint.Path, resp.StatusCode, bytes.TrimSpace(body))
	}
	return body, nil
}
