package feishu

import "fmt"

// TransportError is a failure to reach the webhook endpoint or a non-2xx
// status: DNS, TLS, timeout, connection refused, HTTP 4xx/5xx. Msg is the
// message text that was being sent.
type TransportError struct {
	Msg   string
	Cause string
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport failure sending message: %s", e.Cause)
}

// RemoteError is a 2xx response whose application-level code is non-zero.
// Remote is the endpoint's error string, surfaced verbatim.
type RemoteError struct {
	Msg    string
	Code   int
	Remote string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("endpoint rejected message (code %d): %s", e.Code, e.Remote)
}

// DecodeError is a 2xx response whose body is not valid JSON.
type DecodeError struct {
	Msg   string
	Cause string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("malformed response from endpoint: %s", e.Cause)
}

// EncodeError is a payload that could not be serialized. Not expected in
// normal operation.
type EncodeError struct {
	Msg   string
	Cause string
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("failed to encode payload: %s", e.Cause)
}
