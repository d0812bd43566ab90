package errors

import (
	"fmt"
	"strings"
)

type (
	// String is a constant error. It can be formatted with F and given
	// context with KV while errors.Is still matches the constant.
	String string
	Struct struct {
		e, rr error
		wrap  []error
		kv    []interface{}
	}
)

func (e String) Error() string { return string(e) }

// F formats the error string with v. Any %w verbs are wrapped so that
// errors.Is and errors.As can see through to them.
func (e String) F(v ...interface{}) Struct {
	var kv []interface{}
	for i, val := range v {
		if value, ok := val.(Struct); ok && len(value.kv) > 0 {
			kv = append(kv, value.kv...)
			value.kv = nil
			v[i] = value
		}
	}

	err := fmt.Errorf(string(e), v...)

	var wrap []error
	switch une := err.(type) {
	case interface{ Unwrap() []error }:
		wrap = append(wrap, une.Unwrap()...)
	case interface{ Unwrap() error }:
		if inner := une.Unwrap(); inner != nil {
			wrap = append(wrap, inner)
		}
	}

	return Struct{e: e, rr: err, kv: kv, wrap: wrap}
}

func (e String) KV(kv ...interface{}) Struct {
	return Struct{e: e, rr: e, kv: kv}
}

func (e Struct) Error() string { return e.rr.Error() + fmtKV(e.kv) }

func (e Struct) KV(kv ...interface{}) Struct {
	return Struct{e: e.e, rr: e.rr, wrap: e.wrap, kv: append(append([]interface{}{}, e.kv...), kv...)}
}

func (e Struct) Unwrap() []error { return e.wrap }

func (e Struct) Is(target error) bool {
	switch t := target.(type) {
	case Struct:
		return e.e.Error() == t.e.Error()
	case String:
		return e.e.Error() == t.Error()
	}
	return false
}

func fmtKV(kvPairs []interface{}) string {
	if len(kvPairs) == 0 {
		return ""
	}

	pairs := make([]string, (len(kvPairs)+1)/2)
	for i, n := 0, 0; n < len(kvPairs); i, n = i+1, n+2 {
		key, val := kvPairs[n], interface{}("")
		if n+1 < len(kvPairs) {
			val = kvPairs[n+1]
		}
		pairs[i] = fmt.Sprint(key, `":"`, val)
	}

	return fmt.Sprintf("\t"+`{"%s"}`, strings.Join(pairs, `","`))
}
