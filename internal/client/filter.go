package client

import (
	"bytes"
	"fmt"

	json "github.com/goccy/go-json"
	"go.uber.org/zap"
)

// Project reduces a JSON response body to the requested keys. A single object
// becomes an object with only those keys, in the requested order; an array of
// objects is projected element-wise. A key missing from any object, or input
// that is not a JSON object or array of objects, is an error.
func Project(raw []byte, keys []string) ([]byte, error) {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("parsing response: %w", err)
	}

	switch t := v.(type) {
	case map[string]any:
		return projectObject(t, keys)
	case []any:
		buf := &bytes.Buffer{}
		buf.WriteByte('[')
		for i, elem := range t {
			obj, ok := elem.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("element %d is not an object", i)
			}
			reduced, err := projectObject(obj, keys)
			if err != nil {
				return nil, err
			}
			if i > 0 {
				buf.WriteByte(',')
			}
			buf.Write(reduced)
		}
		buf.WriteByte(']')
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("response is not an object or array")
	}
}

func projectObject(obj map[string]any, keys []string) ([]byte, error) {
	buf := &bytes.Buffer{}
	buf.WriteByte('{')
	for i, k := range keys {
		val, ok := obj[k]
		if !ok {
			return nil, fmt.Errorf("key %q not present", k)
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		vb, err := json.Marshal(val)
		if err != nil {
			return nil, err
		}
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.Write(kb)
		buf.WriteByte(':')
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// FilterOutput applies the session's filter keys to raw. When no keys are
// configured, or the projection fails for any reason, the original bytes are
// returned unchanged. The strict path lives in Project so the fallback stays
// observable and testable on its own.
func (c *Client) FilterOutput(raw []byte) []byte {
	if len(c.filterKeys) == 0 {
		return raw
	}
	out, err := Project(raw, c.filterKeys)
	if err != nil {
		c.log.Debug("filter fell back to unfiltered output", zap.Error(err))
		return raw
	}
	return out
}
