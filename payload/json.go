package payload

import (
	"bytes"
	"encoding/json"
	"errors"

	"github.com/bytedance/sonic"
)

// JSON decodes the default socket.io parser's payloads: a JSON array.
var JSON Decoder = jsonDecoder{api: sonic.ConfigStd}

type jsonDecoder struct{ api sonic.API }

var null = []byte("null")

func (d jsonDecoder) Decode(p []byte) (Array, error) {
	p = bytes.TrimSpace(p)
	if len(p) == 0 || bytes.Equal(p, null) {
		return nil, nil
	}

	if p[0] != '[' {
		if !d.api.Valid(p) {
			return nil, ErrDecode.F(errors.New("invalid character at offset 0"))
		}
		return nil, ErrDecode.F(ErrNotAnArray.F(jsonKind(p[0])))
	}

	var raws []json.RawMessage
	if err := d.api.Unmarshal(p, &raws); err != nil {
		return nil, ErrDecode.F(err)
	}

	arr := make(Array, len(raws))
	for i, raw := range raws {
		el, err := d.element(raw)
		if err != nil {
			return nil, ErrDecode.F(ErrElement.F(i, err))
		}
		arr[i] = el
	}
	return arr, nil
}

func (d jsonDecoder) element(raw json.RawMessage) (Element, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) > 0 && raw[0] == '"' {
		var s string
		if err := d.api.Unmarshal(raw, &s); err != nil {
			return Element{}, err
		}
		return String(s), nil
	}

	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return Element{}, err
	}
	return Raw(buf.String()), nil
}

func jsonKind(b byte) string {
	switch b {
	case '{':
		return "object"
	case '"':
		return "string"
	case 't', 'f':
		return "boolean"
	}
	return "number"
}
