package graph

import (
	"reflect"

	"nuerpay-gateway/api-gateway/internal/domain"

	"github.com/graphql-go/graphql"
)

// passthrough resolves every field of an object from the json tags of its
// source, the way graphql-go's default resolver does, and hands scalars to the
// field type for coercion.
func passthrough(fields graphql.Fields) graphql.Fields {
	for _, field := range fields {
		if field.Resolve == nil {
			field.Resolve = resolveValue
		}
	}
	return fields
}

func resolveValue(p graphql.ResolveParams) (interface{}, error) {
	value, err := graphql.DefaultResolveFn(p)
	if err != nil {
		return nil, err
	}
	return plain(value), nil
}

// plain unwraps Scalars and turns typed nils into nil, so that a missing
// object or list resolves to null instead of an empty value.
func plain(value interface{}) interface{} {
	switch v := value.(type) {
	case nil:
		return nil
	case domain.Scalar:
		return v.Value()
	case []domain.Scalar:
		if v == nil {
			return nil
		}
		out := make([]interface{}, len(v))
		for i := range v {
			out[i] = v[i].Value()
		}
		return out
	case *string:
		if v == nil {
			return nil
		}
		return *v
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Slice, reflect.Map, reflect.Interface:
		if rv.IsNil() {
			return nil
		}
	}
	return value
}
