/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package model

import (
	"context"
	"fmt"
	"math"
	"reflect"

	"github.com/suparena/entitybond/errors"
)

var (
	contextType = reflect.TypeFor[context.Context]()
	errorType   = reflect.TypeFor[error]()
)

// Call invokes method on e by name:
//
//  1. a method defined on e's type is called with args
//  2. otherwise a bond named method receives e and args, and its result is
//     returned as is, without caching or descriptor checks
//  3. otherwise e.CallUndefined decides
//
// A defined method whose first parameter is a context.Context receives ctx
// unless args already supply it.
func Call(ctx context.Context, e Entity, method string, args ...any) (any, error) {
	if m, ok := definedMethod(e, method); ok {
		return invoke(ctx, e, method, m, args)
	}

	t := typeOf(e)
	reg := e.BondRegistry()
	if reg.IsBondedWith(t, method) {
		fn, err := reg.Resolver(t, method)
		if err != nil {
			return nil, err
		}
		return fn(e, args...), nil
	}

	return e.CallUndefined(method, args)
}

func invoke(ctx context.Context, e Entity, method string, m reflect.Value, args []any) (any, error) {
	mt := m.Type()

	if mt.NumIn() > 0 && mt.In(0) == contextType {
		if len(args) == 0 || !isContext(args[0]) {
			args = append([]any{ctx}, args...)
		}
	}

	in, err := callArgs(mt, args)
	if err != nil {
		return nil, fmt.Errorf("call %s.%s: %w", typeName(e), method, err)
	}

	return results(m.Call(in))
}

func isContext(v any) bool {
	_, ok := v.(context.Context)
	return ok
}

// callArgs converts args to the parameter types of mt.
func callArgs(mt reflect.Type, args []any) ([]reflect.Value, error) {
	n := mt.NumIn()
	if mt.IsVariadic() {
		if len(args) < n-1 {
			return nil, errors.NewValidationError("args", fmt.Sprintf("want at least %d arguments, got %d", n-1, len(args)))
		}
	} else if len(args) != n {
		return nil, errors.NewValidationError("args", fmt.Sprintf("want %d arguments, got %d", n, len(args)))
	}

	in := make([]reflect.Value, len(args))
	for i, arg := range args {
		var pt reflect.Type
		if mt.IsVariadic() && i >= n-1 {
			pt = mt.In(n - 1).Elem()
		} else {
			pt = mt.In(i)
		}

		if arg == nil {
			switch pt.Kind() {
			case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice:
				in[i] = reflect.Zero(pt)
				continue
			}
			return nil, errors.NewValidationError("args", fmt.Sprintf("argument %d: nil is not a valid %s", i, pt))
		}

		v := reflect.ValueOf(arg)
		if v.Type().AssignableTo(pt) {
			in[i] = v
			continue
		}
		cv, ok := convertNumber(v, pt)
		if !ok {
			return nil, errors.NewValidationError("args", fmt.Sprintf("argument %d: %s is not assignable to %s", i, v.Type(), pt))
		}
		in[i] = cv
	}
	return in, nil
}

// convertNumber converts v to the numeric type pt when the value fits
// exactly. Floats never become integers.
func convertNumber(v reflect.Value, pt reflect.Type) (reflect.Value, bool) {
	out := reflect.New(pt).Elem()

	switch {
	case isInt(v.Kind()) && isInt(pt.Kind()):
		if out.OverflowInt(v.Int()) {
			return reflect.Value{}, false
		}
		out.SetInt(v.Int())
	case isUint(v.Kind()) && isUint(pt.Kind()):
		if out.OverflowUint(v.Uint()) {
			return reflect.Value{}, false
		}
		out.SetUint(v.Uint())
	case isInt(v.Kind()) && isUint(pt.Kind()):
		if v.Int() < 0 || out.OverflowUint(uint64(v.Int())) {
			return reflect.Value{}, false
		}
		out.SetUint(uint64(v.Int()))
	case isUint(v.Kind()) && isInt(pt.Kind()):
		if v.Uint() > math.MaxInt64 || out.OverflowInt(int64(v.Uint())) {
			return reflect.Value{}, false
		}
		out.SetInt(int64(v.Uint()))
	case isFloat(v.Kind()) && isFloat(pt.Kind()):
		if out.OverflowFloat(v.Float()) {
			return reflect.Value{}, false
		}
		out.SetFloat(v.Float())
	default:
		return reflect.Value{}, false
	}
	return out, true
}

func isInt(k reflect.Kind) bool {
	return k >= reflect.Int && k <= reflect.Int64
}

func isUint(k reflect.Kind) bool {
	return k >= reflect.Uint && k <= reflect.Uintptr
}

func isFloat(k reflect.Kind) bool {
	return k == reflect.Float32 || k == reflect.Float64
}

// results maps method results onto (value, error). A trailing error result is
// split off; remaining multiple values are returned as []any.
func results(out []reflect.Value) (any, error) {
	var err error
	if n := len(out); n > 0 && out[n-1].Type() == errorType {
		if e := out[n-1].Interface(); e != nil {
			err = e.(error)
		}
		out = out[:n-1]
	}

	switch len(out) {
	case 0:
		return nil, err
	case 1:
		return out[0].Interface(), err
	}

	values := make([]any, len(out))
	for i, v := range out {
		values[i] = v.Interface()
	}
	return values, err
}
