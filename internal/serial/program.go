// Package serial decodes and encodes CPS program fixtures for the cpsi
// command-line tool. It is the one place in this module that knows JSON —
// internal/ast and internal/interp never import it, so the core evaluator
// stays shaped for denotational reasoning rather than wire formats.
//
// The decoder is intentionally tolerant: it reads each field by gjson path
// rather than unmarshaling into a rigid struct, so a fixture missing an
// optional field (an empty arm list, a record with no fields) degrades to
// the zero value instead of failing to parse.
package serial

import (
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/rljacobson/cps/internal/ast"
	"github.com/rljacobson/cps/internal/interp/runtime"
)

// Program is a decoded fixture: formals to bind the initial call's
// arguments to, the body expression, and the literal arguments themselves.
type Program struct {
	Formals []ast.Variable
	Body    ast.CExp
	Args    []runtime.Value
}

// Decode parses a fixture document of the shape:
//
//	{
//	  "formals": ["k", "x"],
//	  "args": [{"kind": "function"}, {"kind": "int", "value": 41}],
//	  "body": { "kind": "primop", "op": "+", ... }
//	}
//
// "function" arguments always decode to runtime.TopLevelContinuation() —
// a fixture cannot describe an arbitrary closure in JSON, only ask for the
// standard top-level one.
func Decode(data []byte) (Program, error) {
	if !gjson.ValidBytes(data) {
		return Program{}, fmt.Errorf("serial: invalid JSON")
	}
	root := gjson.ParseBytes(data)

	var formals []ast.Variable
	for _, f := range root.Get("formals").Array() {
		formals = append(formals, ast.Variable(f.String()))
	}

	var args []runtime.Value
	for _, a := range root.Get("args").Array() {
		v, err := decodeRuntimeValue(a)
		if err != nil {
			return Program{}, err
		}
		args = append(args, v)
	}

	bodyNode := root.Get("body")
	if !bodyNode.Exists() {
		return Program{}, fmt.Errorf("serial: fixture has no \"body\"")
	}
	body, err := decodeCExp(bodyNode)
	if err != nil {
		return Program{}, err
	}

	return Program{Formals: formals, Body: body, Args: args}, nil
}

func decodeRuntimeValue(n gjson.Result) (runtime.Value, error) {
	switch kind := n.Get("kind").String(); kind {
	case "int":
		return &runtime.IntegerValue{Value: n.Get("value").Int()}, nil
	case "real":
		return &runtime.RealValue{Value: n.Get("value").Float()}, nil
	case "string":
		return &runtime.StringValue{Value: n.Get("value").String()}, nil
	case "function":
		return runtime.TopLevelContinuation(), nil
	default:
		return nil, fmt.Errorf("serial: unknown value kind %q", kind)
	}
}

func decodeValue(n gjson.Result) (ast.Value, error) {
	switch kind := n.Get("kind").String(); kind {
	case "var":
		return ast.VariableRef{Name: ast.Variable(n.Get("name").String())}, nil
	case "label":
		return ast.LabelRef{Name: ast.Variable(n.Get("name").String())}, nil
	case "int":
		return ast.IntegerLit{Value: n.Get("value").Int()}, nil
	case "real":
		return ast.RealLit{Literal: n.Get("value").String()}, nil
	case "string":
		return ast.StringLit{Value: n.Get("value").String()}, nil
	default:
		return nil, fmt.Errorf("serial: unknown value kind %q", kind)
	}
}

func decodeValues(n gjson.Result) ([]ast.Value, error) {
	var out []ast.Value
	var err error
	n.ForEach(func(_, v gjson.Result) bool {
		var val ast.Value
		val, err = decodeValue(v)
		if err != nil {
			return false
		}
		out = append(out, val)
		return true
	})
	return out, err
}

func decodeVariables(n gjson.Result) []ast.Variable {
	var out []ast.Variable
	for _, v := range n.Array() {
		out = append(out, ast.Variable(v.String()))
	}
	return out
}

func decodeAccessPath(n gjson.Result) (ast.AccessPath, error) {
	if !n.Exists() {
		return ast.Off{K: 0}, nil
	}
	switch kind := n.Get("kind").String(); kind {
	case "", "off":
		return ast.Off{K: int(n.Get("k").Int())}, nil
	case "sel":
		inner, err := decodeAccessPath(n.Get("path"))
		if err != nil {
			return nil, err
		}
		return ast.Sel{K: int(n.Get("k").Int()), Path: inner}, nil
	default:
		return nil, fmt.Errorf("serial: unknown access path kind %q", kind)
	}
}

func decodeFields(n gjson.Result) ([]ast.Field, error) {
	var out []ast.Field
	var err error
	n.ForEach(func(_, f gjson.Result) bool {
		var v ast.Value
		v, err = decodeValue(f.Get("value"))
		if err != nil {
			return false
		}
		var path ast.AccessPath
		path, err = decodeAccessPath(f.Get("path"))
		if err != nil {
			return false
		}
		out = append(out, ast.Field{Value: v, Path: path})
		return true
	})
	return out, err
}

func decodeCExp(n gjson.Result) (ast.CExp, error) {
	switch kind := n.Get("kind").String(); kind {
	case "record":
		fields, err := decodeFields(n.Get("fields"))
		if err != nil {
			return nil, err
		}
		body, err := decodeCExp(n.Get("body"))
		if err != nil {
			return nil, err
		}
		return &ast.RecordExp{Fields: fields, W: ast.Variable(n.Get("w").String()), Body: body}, nil

	case "select":
		v, err := decodeValue(n.Get("v"))
		if err != nil {
			return nil, err
		}
		body, err := decodeCExp(n.Get("body"))
		if err != nil {
			return nil, err
		}
		return &ast.SelectExp{I: int(n.Get("i").Int()), V: v, W: ast.Variable(n.Get("w").String()), Body: body}, nil

	case "offset":
		v, err := decodeValue(n.Get("v"))
		if err != nil {
			return nil, err
		}
		body, err := decodeCExp(n.Get("body"))
		if err != nil {
			return nil, err
		}
		return &ast.OffsetExp{I: int(n.Get("i").Int()), V: v, W: ast.Variable(n.Get("w").String()), Body: body}, nil

	case "app":
		fn, err := decodeValue(n.Get("fn"))
		if err != nil {
			return nil, err
		}
		args, err := decodeValues(n.Get("args"))
		if err != nil {
			return nil, err
		}
		return &ast.AppExp{Fn: fn, Args: args}, nil

	case "fix":
		var defs []ast.FunDef
		var err error
		n.Get("defs").ForEach(func(_, d gjson.Result) bool {
			var body ast.CExp
			body, err = decodeCExp(d.Get("body"))
			if err != nil {
				return false
			}
			defs = append(defs, ast.FunDef{
				Name:    ast.Variable(d.Get("name").String()),
				Formals: decodeVariables(d.Get("formals")),
				Body:    body,
			})
			return true
		})
		if err != nil {
			return nil, err
		}
		body, err := decodeCExp(n.Get("body"))
		if err != nil {
			return nil, err
		}
		return &ast.FixExp{Defs: defs, Body: body}, nil

	case "switch":
		v, err := decodeValue(n.Get("v"))
		if err != nil {
			return nil, err
		}
		var arms []ast.CExp
		n.Get("arms").ForEach(func(_, a gjson.Result) bool {
			var arm ast.CExp
			arm, err = decodeCExp(a)
			if err != nil {
				return false
			}
			arms = append(arms, arm)
			return true
		})
		if err != nil {
			return nil, err
		}
		return &ast.SwitchExp{V: v, Arms: arms}, nil

	case "primop":
		args, err := decodeValues(n.Get("args"))
		if err != nil {
			return nil, err
		}
		binders := decodeVariables(n.Get("binders"))
		var arms []ast.CExp
		n.Get("arms").ForEach(func(_, a gjson.Result) bool {
			var arm ast.CExp
			arm, err = decodeCExp(a)
			if err != nil {
				return false
			}
			arms = append(arms, arm)
			return true
		})
		if err != nil {
			return nil, err
		}
		return &ast.PrimopExp{
			Op:      ast.Primop(n.Get("op").String()),
			Args:    args,
			Binders: binders,
			Arms:    arms,
		}, nil

	default:
		return nil, fmt.Errorf("serial: unknown CExp kind %q", kind)
	}
}
