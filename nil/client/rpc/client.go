package rpc

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/NilFoundation/blobprobe/nil/common/logging"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

var (
	ErrFailedToMarshalRequest    = errors.New("failed to marshal request")
	ErrFailedToSendRequest       = errors.New("failed to send request")
	ErrUnexpectedStatusCode      = errors.New("unexpected status code")
	ErrFailedToReadResponse      = errors.New("failed to read response")
	ErrFailedToUnmarshalResponse = errors.New("failed to unmarshal response")
	ErrRPCError                  = errors.New("rpc error")
)

const (
	Eth_blockNumber     = "eth_blockNumber"
	Eth_chainId         = "eth_chainId"
	Eth_estimateGas     = "eth_estimateGas"
	Eth_sendTransaction = "eth_sendTransaction"
)

// ResponseError is returned when the node answers with a JSON-RPC error envelope.
// Body holds the whole response for diagnostics.
type ResponseError struct {
	Method  string
	Code    int
	Message string
	Body    []byte
}

func (e *ResponseError) Error() string {
	return fmt.Sprintf("%s: %s failed (code %d): %s", ErrRPCError, e.Method, e.Code, e.Message)
}

func (e *ResponseError) Unwrap() error {
	return ErrRPCError
}

type Client struct {
	endpoint string
	seqno    atomic.Uint64
	client   http.Client
	headers  map[string]string
	logger   logging.Logger
}

type Request struct {
	Id      string `json:"id"`
	Version string `json:"jsonrpc"`
	Method  string `json:"method"`
	Params  []any  `json:"params"`
}

func NewRequest(id uint64, method string, params []any) *Request {
	if params == nil {
		params = []any{}
	}
	return &Request{
		Id:      strconv.FormatUint(id, 10),
		Version: "2.0",
		Method:  method,
		Params:  params,
	}
}

type errorObject struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type response struct {
	Result json.RawMessage `json:"result"`
	Error  *errorObject    `json:"error"`
}

func NewClient(endpoint string, logger logging.Logger) *Client {
	return NewClientWithDefaultHeaders(endpoint, logger, nil)
}

func NewClientWithDefaultHeaders(endpoint string, logger logging.Logger, headers map[string]string) *Client {
	c := &Client{
		endpoint: endpoint,
		logger:   logger,
		headers:  headers,
	}

	if strings.HasPrefix(endpoint, "unix://") {
		socketPath := strings.TrimPrefix(endpoint, "unix://")
		if socketPath == "" {
			return nil
		}
		c.endpoint = "http://unix"
		c.client = http.Client{
			Transport: &http.Transport{
				DialContext: func(ctx context.Context, _, _ string) (net.Conn, error) {
					var d net.Dialer
					return d.DialContext(ctx, "unix", socketPath)
				},
			},
		}
	} else if strings.HasPrefix(endpoint, "tcp://") {
		c.endpoint = "http://" + strings.TrimPrefix(endpoint, "tcp://")
	}

	return c
}

func (c *Client) Endpoint() string {
	return c.endpoint
}

func (c *Client) getNextId() uint64 {
	return c.seqno.Add(1)
}

func (c *Client) newRequest(method string, params ...any) *Request {
	return NewRequest(c.getNextId(), method, params)
}

func (c *Client) call(ctx context.Context, method string, params ...any) (json.RawMessage, error) {
	res, _, err := c.performRequest(ctx, c.newRequest(method, params...))
	return res, err
}

// performRequest returns the "result" member and the whole response body.
func (c *Client) performRequest(ctx context.Context, request *Request) (json.RawMessage, []byte, error) {
	requestBody, err := json.Marshal(request)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrFailedToMarshalRequest, err)
	}
	c.logger.Trace().
		Str(logging.FieldRpcMethod, request.Method).
		Str(logging.FieldReqId, request.Id).
		Msg("sending request")

	body, err := c.PlainTextCall(ctx, requestBody)
	if err != nil {
		return nil, body, err
	}

	var rpcResponse response
	if err := json.Unmarshal(body, &rpcResponse); err != nil {
		c.logger.Debug().Str("response", string(body)).Msg("failed to unmarshal response")
		return nil, body, fmt.Errorf("%w: %w: %w", ErrRPCError, ErrFailedToUnmarshalResponse, err)
	}
	c.logger.Trace().RawJSON("response", body).Send()

	if rpcResponse.Error != nil {
		return nil, body, &ResponseError{
			Method:  request.Method,
			Code:    rpcResponse.Error.Code,
			Message: rpcResponse.Error.Message,
			Body:    body,
		}
	}

	return rpcResponse.Result, body, nil
}

// PlainTextCall posts requestBody as is. Every failure unwraps to ErrRPCError.
func (c *Client) PlainTextCall(ctx context.Context, requestBody []byte) ([]byte, error) {
	c.logger.Trace().RawJSON("request", requestBody).Send()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewBuffer(requestBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	for key, value := range c.headers {
		req.Header.Set(key, value)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w: %w", ErrRPCError, ErrFailedToSendRequest, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w: %w", ErrRPCError, ErrFailedToReadResponse, err)
	}

	if resp.StatusCode != http.StatusOK {
		return body, fmt.Errorf("%w: %w: %d: %s", ErrRPCError, ErrUnexpectedStatusCode, resp.StatusCode, body)
	}
	return body, nil
}

func (c *Client) RawCall(ctx context.Context, method string, params ...any) (json.RawMessage, error) {
	return c.call(ctx, method, params...)
}

func (c *Client) BlockNumber(ctx context.Context) (uint64, error) {
	res, err := c.call(ctx, Eth_blockNumber)
	if err != nil {
		return 0, err
	}
	return toUint64(res)
}

func (c *Client) ChainId(ctx context.Context) (uint64, error) {
	res, err := c.call(ctx, Eth_chainId)
	if err != nil {
		return 0, err
	}
	return toUint64(res)
}

// EstimateGas asks the node for the gas limit of a transaction described by args.
func (c *Client) EstimateGas(ctx context.Context, args any) (hexutil.Uint64, error) {
	res, err := c.call(ctx, Eth_estimateGas, args)
	if err != nil {
		return 0, err
	}
	var gas hexutil.Uint64
	if err := json.Unmarshal(res, &gas); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrFailedToUnmarshalResponse, err)
	}
	return gas, nil
}

// SendTransaction lets the node sign and broadcast the transaction described by args.
// The raw response body is returned alongside the hash, also on failure when one was received.
func (c *Client) SendTransaction(ctx context.Context, args any) (common.Hash, []byte, error) {
	res, body, err := c.performRequest(ctx, c.newRequest(Eth_sendTransaction, args))
	if err != nil {
		return common.Hash{}, body, err
	}

	var hash common.Hash
	if err := json.Unmarshal(res, &hash); err != nil {
		return common.Hash{}, body, fmt.Errorf("%w: %w", ErrFailedToUnmarshalResponse, err)
	}
	return hash, body, nil
}

func toUint64(raw json.RawMessage) (uint64, error) {
	var val hexutil.Uint64
	if err := json.Unmarshal(raw, &val); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrFailedToUnmarshalResponse, err)
	}
	return uint64(val), nil
}
