package payload

import (
	"fmt"

	"github.com/bytedance/sonic"
	"github.com/vmihailenco/msgpack"
)

// MsgPack decodes payloads written by the socket.io msgpack parser. Non-string
// elements come back as their JSON text, so both decoders agree on output.
var MsgPack Decoder = msgpackDecoder{}

type msgpackDecoder struct{}

func (msgpackDecoder) Decode(p []byte) (Array, error) {
	if len(p) == 0 {
		return nil, nil
	}

	var v interface{}
	if err := msgpack.Unmarshal(p, &v); err != nil {
		return nil, ErrDecode.F(err)
	}

	var fields []interface{}
	switch val := v.(type) {
	case nil:
		return nil, nil
	case []interface{}:
		fields = val
	default:
		return nil, ErrDecode.F(ErrNotAnArray.F(fmt.Sprintf("%T", v)))
	}

	arr := make(Array, len(fields))
	for i, field := range fields {
		if s, ok := field.(string); ok {
			arr[i] = String(s)
			continue
		}

		data, err := sonic.ConfigStd.Marshal(jsonable(field))
		if err != nil {
			return nil, ErrDecode.F(ErrElement.F(i, err))
		}
		arr[i] = Raw(string(data))
	}
	return arr, nil
}

// jsonable converts the map[interface{}]interface{} values msgpack produces
// into something a JSON encoder accepts.
func jsonable(v interface{}) interface{} {
	switch val := v.(type) {
	case map[interface{}]interface{}:
		out := make(map[string]interface{}, len(val))
		for k, v := range val {
			out[fmt.Sprint(k)] = jsonable(v)
		}
		return out
	case map[string]interface{}:
		out := make(map[string]interface{}, len(val))
		for k, v := range val {
			out[k] = jsonable(v)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(val))
		for i, v := range val {
			out[i] = jsonable(v)
		}
		return out
	}
	return v
}
