package yaml

import (
	"reflect"
	"strings"

	"github.com/shapestone/yaml-core/internal/perror"
)

// Decode maps a materialized Value onto the Go value pointed to by v,
// following the rules in spec §4.5.
func Decode(val Value, v interface{}) error {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() || v == nil {
		return perror.New(perror.TypeMismatch, "Decode(nil)")
	}
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return perror.New(perror.TypeMismatch, "Decode(non-pointer or nil %s)", rv.Type())
	}
	return decodeValue(val, rv.Elem())
}

// DecodeDocuments maps a slice of per-document Values onto v, per the
// multi-document rule in spec §4.5: N documents require an array of length
// N or a slice; a single document decodes directly; zero documents decode
// only into a pointer-to-nothing ("void"), which this package represents
// as a no-op on a zero-length target.
func DecodeDocuments(docs []Value, v interface{}) error {
	if len(docs) == 1 {
		return Decode(docs[0], v)
	}

	rv := reflect.ValueOf(v)
	if !rv.IsValid() || v == nil || rv.Kind() != reflect.Ptr || rv.IsNil() {
		return perror.New(perror.TypeMismatch, "DecodeDocuments(non-pointer or nil %s)", rv.Type())
	}
	elem := rv.Elem()

	if len(docs) == 0 {
		switch elem.Kind() {
		case reflect.Slice:
			elem.Set(reflect.MakeSlice(elem.Type(), 0, 0))
			return nil
		case reflect.Array:
			if elem.Len() != 0 {
				return perror.New(perror.ArraySizeMismatch, "0 documents but target array has length %d", elem.Len())
			}
			return nil
		default:
			if elem.Type().Size() == 0 {
				return nil // void target, e.g. struct{}
			}
			return perror.New(perror.TypeMismatch, "0 documents cannot decode into %s", elem.Type())
		}
	}

	switch elem.Kind() {
	case reflect.Array:
		if elem.Len() != len(docs) {
			return perror.New(perror.ArraySizeMismatch, "%d documents but target array has length %d", len(docs), elem.Len())
		}
		for i, d := range docs {
			if err := decodeValue(d, elem.Index(i)); err != nil {
				return err
			}
		}
		return nil
	case reflect.Slice:
		slice := reflect.MakeSlice(elem.Type(), len(docs), len(docs))
		for i, d := range docs {
			if err := decodeValue(d, slice.Index(i)); err != nil {
				return err
			}
		}
		elem.Set(slice)
		return nil
	default:
		return perror.New(perror.TypeMismatch, "%d documents require an array or slice target, got %s", len(docs), elem.Type())
	}
}

func decodeValue(val Value, rv reflect.Value) error {
	if rv.Kind() != reflect.Ptr && rv.CanAddr() {
		if u, ok := rv.Addr().Interface().(Unmarshaler); ok {
			return u.UnmarshalYAML(val)
		}
	}

	if rv.Kind() == reflect.Ptr {
		if val.Kind() == KindEmpty {
			rv.Set(reflect.Zero(rv.Type()))
			return nil
		}
		if rv.IsNil() {
			rv.Set(reflect.New(rv.Type().Elem()))
		}
		return decodeValue(val, rv.Elem())
	}

	if rv.Kind() == reflect.Interface && rv.NumMethod() == 0 {
		goVal, err := toInterface(val)
		if err != nil {
			return err
		}
		rv.Set(reflect.ValueOf(goVal))
		return nil
	}

	switch val.Kind() {
	case KindInt:
		return decodeInt(val.Int(), rv)
	case KindFloat:
		return decodeFloat(val.Float(), rv)
	case KindBool:
		return decodeBool(val.Bool(), rv)
	case KindString:
		return decodeString(val.String(), rv)
	case KindList:
		return decodeList(val.List(), rv)
	case KindMap:
		return decodeMap(val.Map(), rv)
	case KindEmpty:
		rv.Set(reflect.Zero(rv.Type()))
		return nil
	default:
		return perror.New(perror.TypeMismatch, "unrecognized value kind %s", val.Kind())
	}
}

func decodeInt(i int64, rv reflect.Value) error {
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if rv.OverflowInt(i) {
			return perror.New(perror.Overflow, "value %d overflows %s", i, rv.Type())
		}
		rv.SetInt(i)
		return nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if i < 0 || rv.OverflowUint(uint64(i)) {
			return perror.New(perror.Overflow, "value %d overflows %s", i, rv.Type())
		}
		rv.SetUint(uint64(i))
		return nil
	case reflect.Float32, reflect.Float64:
		return decodeFloat(float64(i), rv)
	default:
		return perror.New(perror.TypeMismatch, "cannot decode int into %s", rv.Type())
	}
}

func decodeFloat(f float64, rv reflect.Value) error {
	if rv.Kind() != reflect.Float32 && rv.Kind() != reflect.Float64 {
		return perror.New(perror.TypeMismatch, "cannot decode float into %s", rv.Type())
	}
	if rv.OverflowFloat(f) {
		return perror.New(perror.Overflow, "value %v overflows %s", f, rv.Type())
	}
	rv.SetFloat(f)
	return nil
}

func decodeBool(b bool, rv reflect.Value) error {
	if rv.Kind() != reflect.Bool {
		return perror.New(perror.TypeMismatch, "cannot decode bool into %s", rv.Type())
	}
	rv.SetBool(b)
	return nil
}

func decodeString(s string, rv reflect.Value) error {
	if rv.Kind() == reflect.Slice && rv.Type().Elem().Kind() == reflect.Uint8 {
		rv.SetBytes([]byte(s))
		return nil
	}
	if rv.Kind() != reflect.String {
		return perror.New(perror.TypeMismatch, "cannot decode string into %s", rv.Type())
	}
	rv.SetString(s)
	return nil
}

func decodeList(elems []Value, rv reflect.Value) error {
	switch rv.Kind() {
	case reflect.Array:
		if len(elems) != rv.Len() {
			return perror.New(perror.ArraySizeMismatch, "list of %d elements but array has length %d", len(elems), rv.Len())
		}
		for i, e := range elems {
			if err := decodeValue(e, rv.Index(i)); err != nil {
				return err
			}
		}
		return nil
	case reflect.Slice:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return perror.New(perror.TypeMismatch, "cannot decode list into %s (use string for []byte)", rv.Type())
		}
		slice := reflect.MakeSlice(rv.Type(), len(elems), len(elems))
		for i, e := range elems {
			if err := decodeValue(e, slice.Index(i)); err != nil {
				return err
			}
		}
		rv.Set(slice)
		return nil
	default:
		return perror.New(perror.TypeMismatch, "cannot decode list into %s", rv.Type())
	}
}

func decodeMap(m *OrderedMap, rv reflect.Value) error {
	switch rv.Kind() {
	case reflect.Struct:
		return decodeStruct(m, rv)
	case reflect.Map:
		return decodeMapKind(m, rv)
	default:
		return perror.New(perror.TypeMismatch, "cannot decode map into %s", rv.Type())
	}
}

func decodeStruct(m *OrderedMap, rv reflect.Value) error {
	structType := rv.Type()
	for i := 0; i < structType.NumField(); i++ {
		field := structType.Field(i)
		if field.PkgPath != "" {
			continue
		}
		info := getFieldInfo(field)
		if info.skip {
			continue
		}

		val, ok := m.Get(info.name)
		if !ok {
			// Retry with '_' -> '-' substitution (spec §4.5).
			val, ok = m.Get(strings.ReplaceAll(info.name, "_", "-"))
		}
		if !ok {
			if isOptionalKind(field.Type) || info.omitEmpty {
				continue
			}
			return perror.New(perror.StructFieldMissing, "missing required field %q", info.name)
		}

		if err := decodeValue(val, rv.Field(i)); err != nil {
			return err
		}
	}
	return nil
}

func isOptionalKind(t reflect.Type) bool {
	return t.Kind() == reflect.Ptr
}

func decodeMapKind(m *OrderedMap, rv reflect.Value) error {
	if rv.IsNil() {
		rv.Set(reflect.MakeMap(rv.Type()))
	}
	keyType := rv.Type().Key()
	if keyType.Kind() != reflect.String {
		return perror.New(perror.TypeMismatch, "unsupported map key type %s", keyType)
	}
	valueType := rv.Type().Elem()

	var err error
	m.Range(func(key string, v Value) {
		if err != nil {
			return
		}
		elem := reflect.New(valueType).Elem()
		if e := decodeValue(v, elem); e != nil {
			err = e
			return
		}
		rv.SetMapIndex(reflect.ValueOf(key), elem)
	})
	return err
}

// DecodeUnion tries each variant decoder in declaration order (spec §4.5's
// tagged-union-by-trial-decode), returning the first that succeeds.
// TypeMismatch and StructFieldMissing from a variant are tolerated and move
// on to the next; any other error from a variant is returned unchanged, and
// exhausting every variant fails with UntaggedUnion.
func DecodeUnion(val Value, variants ...func(Value) (interface{}, error)) (interface{}, error) {
	for _, try := range variants {
		result, err := try(val)
		if err == nil {
			return result, nil
		}
		if perror.Is(err, perror.TypeMismatch) || perror.Is(err, perror.StructFieldMissing) {
			continue
		}
		return nil, err
	}
	return nil, perror.New(perror.UntaggedUnion, "no union variant matched")
}

func toInterface(val Value) (interface{}, error) {
	switch val.Kind() {
	case KindEmpty:
		return nil, nil
	case KindInt:
		return val.Int(), nil
	case KindFloat:
		return val.Float(), nil
	case KindBool:
		return val.Bool(), nil
	case KindString:
		return val.String(), nil
	case KindList:
		out := make([]interface{}, len(val.List()))
		for i, e := range val.List() {
			v, err := toInterface(e)
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return out, nil
	case KindMap:
		out := make(map[string]interface{}, val.Map().Len())
		var err error
		val.Map().Range(func(k string, v Value) {
			if err != nil {
				return
			}
			gv, e := toInterface(v)
			if e != nil {
				err = e
				return
			}
			out[k] = gv
		})
		if err != nil {
			return nil, err
		}
		return out, nil
	default:
		return nil, perror.New(perror.TypeMismatch, "unrecognized value kind %s", val.Kind())
	}
}
