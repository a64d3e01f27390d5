package orm

import (
	"reflect"

	"github.com/iov-one/adminlist/errors"
)

var _ Object = (*SimpleObj)(nil)

// SimpleObj pairs a key with any Model. Buckets that store a single type
// use it as their prototype.
type SimpleObj struct {
	key   []byte
	value Model
}

// NewSimpleObj returns an object storing value under key. The value must be
// a pointer so that it can be cloned and loaded into.
func NewSimpleObj(key []byte, value Model) *SimpleObj {
	return &SimpleObj{key: key, value: value}
}

func (o SimpleObj) Value() Model {
	return o.value
}

func (o SimpleObj) Key() []byte {
	return o.key
}

func (o *SimpleObj) SetKey(key []byte) {
	o.key = key
}

// Validate requires both the key and the value and then validates the
// value itself.
func (o SimpleObj) Validate() error {
	var err error
	if len(o.key) == 0 {
		err = errors.AppendField(err, "Key", errors.ErrEmpty)
	}
	if o.value == nil {
		return errors.AppendField(err, "Value", errors.ErrEmpty)
	}
	if err != nil {
		return err
	}
	return o.value.Validate()
}

// Clone returns an object with a copy of the key and a zero value of the
// same type, ready to be unmarshaled into.
func (o *SimpleObj) Clone() Object {
	return &SimpleObj{
		key:   cloneKey(o.key),
		value: zeroModel(o.value),
	}
}

func cloneKey(key []byte) []byte {
	if len(key) == 0 {
		return nil
	}
	return append([]byte(nil), key...)
}

func zeroModel(m Model) Model {
	return reflect.New(reflect.TypeOf(m).Elem()).Interface().(Model)
}
