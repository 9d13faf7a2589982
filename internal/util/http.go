package util

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"reflect"

	"github.com/rs/zerolog/log"
)

type SerializationSchema int

const (
	JSON SerializationSchema = iota
)

var ErrEmptyResponseBody = fmt.Errorf("empty response body")

type HTTPRequestParams struct {
	Method       string
	RequestURL   string
	Header       http.Header
	RequestBody  any
	EncodeSchema *SerializationSchema
	DecodeSchema *SerializationSchema
}

type HTTPResponse[T any] struct {
	Code         int
	Status       string
	Header       http.Header
	Body         []byte
	DecodedValue T
}

// HTTPResponseError means the server answered, but not with something the
// caller can use. Transport failures are never wrapped in it.
type HTTPResponseError struct {
	Code   int
	Header http.Header
	Body   []byte
	Cause  error
}

func (err HTTPResponseError) Error() string {
	return fmt.Sprintf("unexpected http response, code: %d, body: '%s', cause: %v", err.Code, err.Body, err.Cause)
}

func (err HTTPResponseError) Unwrap() error {
	return err.Cause
}

func (params HTTPRequestParams) validate() error {
	if params.Method == "" {
		return fmt.Errorf("field Method cannot be empty")
	}
	if params.RequestURL == "" {
		return fmt.Errorf("field RequestURL cannot be empty")
	}
	if _, err := url.Parse(params.RequestURL); err != nil {
		return fmt.Errorf("unparsable RequestURL '%s': %v", params.RequestURL, err)
	}
	if params.EncodeSchema != nil && *params.EncodeSchema != JSON {
		return fmt.Errorf("unsupported EncodeSchema: %v", *params.EncodeSchema)
	}
	if params.DecodeSchema != nil && *params.DecodeSchema != JSON {
		return fmt.Errorf("unsupported DecodeSchema: %v", *params.DecodeSchema)
	}

	return nil
}

// SendHttpRequest performs one request. A transport failure is returned as
// is, so callers can inspect the underlying net/syscall error; any non 2xx
// answer comes back as HTTPResponseError.
func SendHttpRequest[T any](ctx context.Context, client *http.Client, params HTTPRequestParams) (*HTTPResponse[T], error) {
	if client == nil {
		return nil, fmt.Errorf("http client cannot be nil")
	}
	if err := params.validate(); err != nil {
		return nil, fmt.Errorf("invalid argument HTTPRequestParams: %v", err)
	}

	reqBody, err := getRequestBody(params)
	if err != nil {
		return nil, fmt.Errorf("failed to get request body: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, params.Method, params.RequestURL, reqBody)
	if err != nil {
		return nil, err
	}
	if params.Header != nil {
		req.Header = params.Header.Clone()
	}
	if params.EncodeSchema != nil && req.Header.Get("Content-Type") == "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read from response body: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, HTTPResponseError{
			Code:   resp.StatusCode,
			Header: resp.Header,
			Body:   body,
			Cause:  fmt.Errorf("non 2xx response"),
		}
	}

	var t T
	if params.DecodeSchema != nil {
		if len(body) == 0 {
			return nil, HTTPResponseError{
				Code:   resp.StatusCode,
				Header: resp.Header,
				Body:   body,
				Cause:  ErrEmptyResponseBody,
			}
		}
		if err := json.Unmarshal(body, &t); err != nil {
			return nil, HTTPResponseError{
				Code:   resp.StatusCode,
				Header: resp.Header,
				Body:   body,
				Cause:  fmt.Errorf("failed to json unmarshal response body: %v", err),
			}
		}
	}

	return &HTTPResponse[T]{
		Code:         resp.StatusCode,
		Status:       resp.Status,
		Header:       resp.Header,
		Body:         body,
		DecodedValue: t,
	}, nil
}

func getRequestBody(params HTTPRequestParams) (io.Reader, error) {
	if !mayHaveRequestBody(params.Method) || IsNil(params.RequestBody) {
		return nil, nil
	}

	if params.EncodeSchema != nil {
		bs, err := json.Marshal(params.RequestBody)
		if err != nil {
			return nil, fmt.Errorf("failed to json encode request body: %v", err)
		}
		return bytes.NewReader(bs), nil
	}
	if r, ok := params.RequestBody.(io.Reader); ok {
		return r, nil
	}
	return nil, fmt.Errorf("RequestBody is expected to be of type io.Reader when EncodeSchema is not provided")
}

func ResponseAsJSON(w http.ResponseWriter, status int, a any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if !IsNil(a) {
		err := json.NewEncoder(w).Encode(a)
		if err != nil {
			log.Err(err).Msg("json encoding error")
		}
	}
}

func mayHaveRequestBody(method string) bool {
	return method == http.MethodPost || method == http.MethodPut || method == http.MethodPatch
}

func IsNil(a any) bool {
	return a == nil || (reflect.ValueOf(a).Kind() == reflect.Ptr && reflect.ValueOf(a).IsNil())
}
