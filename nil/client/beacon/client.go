package beacon

import (
	"cmp"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"slices"
	"strconv"

	"github.com/NilFoundation/blobprobe/nil/common/logging"
)

var (
	ErrRequestFailed    = errors.New("beacon node request failed")
	ErrUnexpectedStatus = errors.New("unexpected beacon node status")
	ErrNoHeaders        = errors.New("beacon node returned no headers")
)

const (
	headersEndpoint      = "/eth/v1/beacon/headers"
	blocksEndpoint       = "/eth/v2/beacon/blocks"
	blobSidecarsEndpoint = "/eth/v1/beacon/blob_sidecars"
)

// StatusError carries the body of a non-200 answer.
type StatusError struct {
	Url        string
	StatusCode int
	Body       []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: %s returned %d: %s", ErrUnexpectedStatus, e.Url, e.StatusCode, e.Body)
}

func (e *StatusError) Unwrap() error {
	return ErrUnexpectedStatus
}

func IsNotFound(err error) bool {
	var statusErr *StatusError
	return errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusNotFound
}

// Client talks to the REST API of a consensus-layer node.
type Client struct {
	endpoint string
	client   http.Client
	logger   logging.Logger
}

func NewClient(endpoint string, logger logging.Logger) *Client {
	return &Client{
		endpoint: endpoint,
		logger:   logger,
	}
}

func (c *Client) Endpoint() string {
	return c.endpoint
}

func (c *Client) get(ctx context.Context, result any, elems ...string) error {
	reqUrl, err := url.JoinPath(c.endpoint, elems...)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqUrl, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}
	req.Header.Set("Accept", "application/json")

	c.logger.Trace().Str(logging.FieldUrl, reqUrl).Msg("beacon request")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: failed to read response: %w", ErrRequestFailed, err)
	}

	if resp.StatusCode != http.StatusOK {
		return &StatusError{Url: reqUrl, StatusCode: resp.StatusCode, Body: body}
	}

	if err := json.Unmarshal(body, result); err != nil {
		c.logger.Debug().Str(logging.FieldUrl, reqUrl).Str("response", string(body)).Msg("failed to decode response")
		return fmt.Errorf("%w: failed to decode %s: %w", ErrRequestFailed, reqUrl, err)
	}
	return nil
}

// HeadSlot returns the slot of the latest header known to the node.
func (c *Client) HeadSlot(ctx context.Context) (uint64, error) {
	var resp HeadersResp
	if err := c.get(ctx, &resp, headersEndpoint); err != nil {
		return 0, err
	}
	if len(resp.Data) == 0 {
		return 0, ErrNoHeaders
	}
	return resp.Data[0].Header.Message.Slot, nil
}

// BlockCommitments returns the blob commitments of the block at slot.
// A slot without a block yields an empty list.
func (c *Client) BlockCommitments(ctx context.Context, slot uint64) ([]string, error) {
	var resp BlockResp
	if err := c.get(ctx, &resp, blocksEndpoint, strconv.FormatUint(slot, 10)); err != nil {
		if IsNotFound(err) {
			c.logger.Debug().Uint64(logging.FieldSlot, slot).Msg("no block at slot")
			return []string{}, nil
		}
		return nil, err
	}
	return resp.Commitments(), nil
}

// BlobSidecars returns the blobs published at slot, ordered by index.
// A slot without a block yields an empty list.
func (c *Client) BlobSidecars(ctx context.Context, slot uint64) ([]BlobSidecar, error) {
	var resp BlobSidecarsResp
	if err := c.get(ctx, &resp, blobSidecarsEndpoint, strconv.FormatUint(slot, 10)); err != nil {
		if IsNotFound(err) {
			return []BlobSidecar{}, nil
		}
		return nil, err
	}
	sidecars := resp.Data
	if sidecars == nil {
		sidecars = []BlobSidecar{}
	}
	slices.SortFunc(sidecars, func(a, b BlobSidecar) int {
		return cmp.Compare(a.Index, b.Index)
	})
	return sidecars, nil
}
