package remote

import "encoding/json"

// Params are the method parameters sent to the remote.
type Params map[string]any

type request struct {
	Method string `json:"method"`
	Params Params `json:"params"`
}

// Envelope is the {ok, data|error} wrapper around every remote response.
type Envelope struct {
	OK    bool            `json:"ok"`
	Data  json.RawMessage `json:"data,omitempty"`
	Error *EnvelopeError  `json:"error,omitempty"`

	// Raw is the response body exactly as received.
	Raw []byte `json:"-"`
}

type EnvelopeError struct {
	Message string `json:"message"`
}

// UnmarshalJSON also accepts a bare string in place of {"message": ...}.
// Any other shape leaves Message empty instead of failing the envelope.
func (e *EnvelopeError) UnmarshalJSON(data []byte) error {
	e.Message = ""

	var message string
	if err := json.Unmarshal(data, &message); err == nil {
		e.Message = message
		return nil
	}

	var p struct {
		Message any `json:"message"`
	}
	if err := json.Unmarshal(data, &p); err == nil {
		e.Message, _ = p.Message.(string)
	}
	return nil
}
