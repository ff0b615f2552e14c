package graph

import (
	"context"
	"fmt"

	"nuerpay-gateway/api-gateway/internal/backend"
	"nuerpay-gateway/api-gateway/internal/logging"

	"github.com/graphql-go/graphql"
	"go.uber.org/zap"
)

// fetchFn performs the single backend call behind a field.
type fetchFn func(ctx context.Context, args map[string]interface{}) (interface{}, error)

// query resolves a read field. The backend call starts immediately in its own
// goroutine and the executor receives a thunk, so sibling fields run
// concurrently. Failures resolve to null.
func (r *Resolver) query(field string, fetch fetchFn) graphql.FieldResolveFn {
	return concurrently(r.nullOnError(field, fetch))
}

// nullOnError logs a failed backend call and resolves the field to null
// without adding a GraphQL error, so the rest of the response survives.
func (r *Resolver) nullOnError(field string, fetch fetchFn) graphql.FieldResolveFn {
	return func(p graphql.ResolveParams) (interface{}, error) {
		ctx := paramsContext(p)
		value, err := fetch(ctx, p.Args)
		if err != nil {
			r.failed(ctx, field, err)
			return nil, nil
		}
		return plain(value), nil
	}
}

// surfaceError reports a failed backend call in the response errors.
func (r *Resolver) surfaceError(field string, fetch fetchFn) graphql.FieldResolveFn {
	return func(p graphql.ResolveParams) (interface{}, error) {
		ctx := paramsContext(p)
		value, err := fetch(ctx, p.Args)
		if err != nil {
			r.failed(ctx, field, err)
			return nil, fmt.Errorf("%s failed: %w", field, err)
		}
		return plain(value), nil
	}
}

func (r *Resolver) failed(ctx context.Context, field string, err error) {
	fields := []zap.Field{zap.String("field", field), zap.Error(err)}
	if status := backend.StatusCode(err); status != 0 {
		fields = append(fields, zap.Int("status", status))
	}
	logging.FromContext(ctx, r.log).Warn("backend call failed", fields...)

	if r.metrics != nil {
		r.metrics.FieldFailed(field)
	}
}

type resolved struct {
	value interface{}
	err   error
}

func concurrently(resolve graphql.FieldResolveFn) graphql.FieldResolveFn {
	return func(p graphql.ResolveParams) (interface{}, error) {
		done := make(chan resolved, 1)
		go func() {
			defer func() {
				if rec := recover(); rec != nil {
					done <- resolved{err: fmt.Errorf("resolver panic: %v", rec)}
				}
			}()
			value, err := resolve(p)
			done <- resolved{value: value, err: err}
		}()

		return func() (interface{}, error) {
			res := <-done
			return res.value, res.err
		}, nil
	}
}

func paramsContext(p graphql.ResolveParams) context.Context {
	if p.Context == nil {
		return context.Background()
	}
	return p.Context
}
