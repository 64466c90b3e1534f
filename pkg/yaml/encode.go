package yaml

import (
	"reflect"
	"sort"

	"github.com/shapestone/yaml-core/internal/perror"
)

// Encode converts a host Go value into a Value (spec §4.6). A nil pointer,
// nil interface, or nil slice/map encodes as Empty.
func Encode(v interface{}) (Value, error) {
	return encodeReflect(reflect.ValueOf(v))
}

func encodeReflect(rv reflect.Value) (Value, error) {
	if !rv.IsValid() {
		return Empty, nil
	}

	if rv.Kind() != reflect.Ptr || !rv.IsNil() {
		if m, ok := rv.Interface().(Marshaler); ok {
			return m.MarshalYAML()
		}
	}

	for rv.Kind() == reflect.Ptr || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return Empty, nil
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.String:
		return String(rv.String()), nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Int(rv.Int()), nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u := rv.Uint()
		if u > (1<<63 - 1) {
			return Empty, perror.New(perror.Overflow, "uint value %d overflows i64", u)
		}
		return Int(int64(u)), nil

	case reflect.Float32, reflect.Float64:
		return Float(rv.Float()), nil

	case reflect.Bool:
		return Bool(rv.Bool()), nil

	case reflect.Struct:
		return encodeStruct(rv)

	case reflect.Map:
		return encodeMap(rv)

	case reflect.Slice, reflect.Array:
		return encodeSequence(rv)

	default:
		return Empty, perror.New(perror.CannotEncodeValue, "cannot encode Go value of type %s", rv.Type())
	}
}

func encodeStruct(rv reflect.Value) (Value, error) {
	structType := rv.Type()
	m := NewOrderedMap()

	for i := 0; i < structType.NumField(); i++ {
		field := structType.Field(i)
		if field.PkgPath != "" {
			continue
		}
		info := getFieldInfo(field)
		if info.skip {
			continue
		}

		fieldVal := rv.Field(i)
		if info.omitEmpty && isEmptyValue(fieldVal) {
			continue
		}

		encoded, err := encodeReflect(fieldVal)
		if err != nil {
			return Empty, err
		}
		m.Set(info.name, encoded)
	}

	return Map(m), nil
}

func encodeMap(rv reflect.Value) (Value, error) {
	if rv.IsNil() {
		return Empty, nil
	}
	if rv.Type().Key().Kind() != reflect.String {
		return Empty, perror.New(perror.CannotEncodeValue, "unsupported map key type %s", rv.Type().Key())
	}

	m := NewOrderedMap()
	keys := rv.MapKeys()
	strKeys := make([]string, len(keys))
	for i, k := range keys {
		strKeys[i] = k.String()
	}
	sort.Strings(strKeys)

	for _, k := range strKeys {
		val := rv.MapIndex(reflect.ValueOf(k))
		encoded, err := encodeReflect(val)
		if err != nil {
			return Empty, err
		}
		m.Set(k, encoded)
	}
	return Map(m), nil
}

func encodeSequence(rv reflect.Value) (Value, error) {
	if rv.Kind() == reflect.Slice && rv.IsNil() {
		return Empty, nil
	}
	if rv.Type().Elem().Kind() == reflect.Uint8 {
		buf := make([]byte, rv.Len())
		for i := range buf {
			buf[i] = byte(rv.Index(i).Uint())
		}
		return String(string(buf)), nil
	}

	elems := make([]Value, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		v, err := encodeReflect(rv.Index(i))
		if err != nil {
			return Empty, err
		}
		elems[i] = v
	}
	return List(elems), nil
}
