package gateway

import "errors"

// FailureMessage is the only error text callers ever see.
const FailureMessage = "잔소리 생성에 실패했습니다. 다시 시도해주세요."

// ErrRequestDecode indicates the request body was not a valid scolding request.
var ErrRequestDecode = errors.New("failed to decode scolding request")

// ErrNilLLMClient indicates the gateway was constructed without an LLM client.
var ErrNilLLMClient = errors.New("gateway requires a non-nil LLM client")
