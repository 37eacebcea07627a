package tree

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// MarshalJSON implements json.Marshaler. Keys keep insertion order.
func (r *Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteByte('{')

	for i, e := range r.entriesOrNil() {
		if i > 0 {
			buf.WriteByte(',')
		}

		key, err := json.Marshal(e.key)
		if err != nil {
			return nil, err
		}

		buf.Write(key)
		buf.WriteByte(':')

		val, err := e.value.MarshalJSON()
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", e.key, err)
		}

		buf.Write(val)
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// MarshalJSON implements json.Marshaler.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindString:
		return json.Marshal(v.str)
	case KindNull:
		return []byte("null"), nil
	case KindRecord:
		return v.rec.MarshalJSON()
	case KindList:
		var buf bytes.Buffer

		buf.WriteByte('[')

		for i, item := range v.list.items {
			if i > 0 {
				buf.WriteByte(',')
			}

			b, err := item.MarshalJSON()
			if err != nil {
				return nil, err
			}

			buf.Write(b)
		}

		buf.WriteByte(']')

		return buf.Bytes(), nil
	default:
		return nil, errors.New("cannot marshal absent value")
	}
}

// UnmarshalJSON implements json.Unmarshaler. Numbers and booleans are kept as
// their literal text since leaves are strings.
func (r *Record) UnmarshalJSON(data []byte) error {
	dec := newDecoder(bytes.NewReader(data))

	v, err := decodeValue(dec)
	if err != nil {
		return err
	}

	if v.kind != KindRecord {
		return fmt.Errorf("expected JSON object, got %s", v.kind)
	}

	*r = *v.rec

	return nil
}

// DecodeRecords reads either one JSON object or an array of objects.
func DecodeRecords(rd io.Reader) ([]*Record, error) {
	dec := newDecoder(rd)

	v, err := decodeValue(dec)
	if err != nil {
		return nil, err
	}

	switch v.kind {
	case KindRecord:
		return []*Record{v.rec}, nil
	case KindNull:
		return nil, nil
	case KindList:
		records := make([]*Record, 0, v.list.Len())

		for i, item := range v.list.items {
			if item.kind != KindRecord {
				return nil, fmt.Errorf("element %d: expected JSON object, got %s", i, item.kind)
			}

			records = append(records, item.rec)
		}

		return records, nil
	default:
		return nil, fmt.Errorf("expected JSON object or array, got %s", v.kind)
	}
}

func newDecoder(rd io.Reader) *json.Decoder {
	dec := json.NewDecoder(rd)
	dec.UseNumber()

	return dec
}

func decodeValue(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return Value{}, fmt.Errorf("failed to read JSON: %w", err)
	}

	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return decodeObject(dec)
		case '[':
			return decodeArray(dec)
		default:
			return Value{}, fmt.Errorf("unexpected delimiter %q", t)
		}
	case string:
		return String(t), nil
	case json.Number:
		return String(t.String()), nil
	case bool:
		return String(strconv.FormatBool(t)), nil
	case nil:
		return Null(), nil
	default:
		return Value{}, fmt.Errorf("unexpected token %v", tok)
	}
}

func decodeObject(dec *json.Decoder) (Value, error) {
	rec := NewRecord()

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return Value{}, fmt.Errorf("failed to read JSON key: %w", err)
		}

		key, ok := tok.(string)
		if !ok {
			return Value{}, fmt.Errorf("unexpected key token %v", tok)
		}

		v, err := decodeValue(dec)
		if err != nil {
			return Value{}, fmt.Errorf("key %q: %w", key, err)
		}

		rec.Set(key, v)
	}

	// closing '}'
	if _, err := dec.Token(); err != nil {
		return Value{}, fmt.Errorf("failed to read JSON: %w", err)
	}

	return RecordValue(rec), nil
}

func decodeArray(dec *json.Decoder) (Value, error) {
	list := ListOf()

	for dec.More() {
		v, err := decodeValue(dec)
		if err != nil {
			return Value{}, err
		}

		list.list.Append(v)
	}

	// closing ']'
	if _, err := dec.Token(); err != nil {
		return Value{}, fmt.Errorf("failed to read JSON: %w", err)
	}

	return list, nil
}
