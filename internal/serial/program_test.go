package serial

import (
	"testing"

	"github.com/rljacobson/cps/internal/ast"
)

func TestDecodeIdentityProgram(t *testing.T) {
	data := []byte(`{
		"formals": ["k", "x"],
		"args": [{"kind": "function"}, {"kind": "int", "value": 41}],
		"body": {
			"kind": "app",
			"fn": {"kind": "var", "name": "k"},
			"args": [{"kind": "var", "name": "x"}]
		}
	}`)

	p, err := Decode(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(p.Formals) != 2 || p.Formals[0] != "k" || p.Formals[1] != "x" {
		t.Fatalf("Formals = %v, want [k x]", p.Formals)
	}
	if len(p.Args) != 2 {
		t.Fatalf("Args = %v, want 2 entries", p.Args)
	}
	app, ok := p.Body.(*ast.AppExp)
	if !ok {
		t.Fatalf("Body = %T, want *ast.AppExp", p.Body)
	}
	fn, ok := app.Fn.(ast.VariableRef)
	if !ok || fn.Name != "k" {
		t.Fatalf("Fn = %v, want VariableRef{k}", app.Fn)
	}
}

func TestDecodeNestedPrimopAndFix(t *testing.T) {
	data := []byte(`{
		"formals": ["k"],
		"args": [{"kind": "function"}],
		"body": {
			"kind": "fix",
			"defs": [{
				"name": "f",
				"formals": ["n", "k2"],
				"body": {
					"kind": "primop",
					"op": "+",
					"args": [{"kind": "var", "name": "n"}, {"kind": "int", "value": 1}],
					"binders": ["w"],
					"arms": [{
						"kind": "app",
						"fn": {"kind": "var", "name": "k2"},
						"args": [{"kind": "var", "name": "w"}]
					}]
				}
			}],
			"body": {
				"kind": "app",
				"fn": {"kind": "label", "name": "f"},
				"args": [{"kind": "int", "value": 41}, {"kind": "var", "name": "k"}]
			}
		}
	}`)

	p, err := Decode(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	fix, ok := p.Body.(*ast.FixExp)
	if !ok || len(fix.Defs) != 1 {
		t.Fatalf("Body = %T, want a one-def FixExp", p.Body)
	}
	if fix.Defs[0].Name != "f" {
		t.Fatalf("def name = %q, want f", fix.Defs[0].Name)
	}
	primop, ok := fix.Defs[0].Body.(*ast.PrimopExp)
	if !ok || primop.Op != ast.Add {
		t.Fatalf("def body = %v, want a + primop", fix.Defs[0].Body)
	}
}

func TestDecodeMissingBodyErrors(t *testing.T) {
	_, err := Decode([]byte(`{"formals": []}`))
	if err == nil {
		t.Fatal("expected an error for a fixture with no body")
	}
}

func TestDecodeInvalidJSONErrors(t *testing.T) {
	_, err := Decode([]byte(`not json`))
	if err == nil {
		t.Fatal("expected an error for invalid JSON")
	}
}

func TestDecodeSwitch(t *testing.T) {
	data := []byte(`{
		"formals": ["k", "i"],
		"args": [{"kind": "function"}, {"kind": "int", "value": 1}],
		"body": {
			"kind": "switch",
			"v": {"kind": "var", "name": "i"},
			"arms": [
				{"kind": "app", "fn": {"kind": "var", "name": "k"}, "args": [{"kind": "int", "value": 100}]},
				{"kind": "app", "fn": {"kind": "var", "name": "k"}, "args": [{"kind": "int", "value": 200}]}
			]
		}
	}`)

	p, err := Decode(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	sw, ok := p.Body.(*ast.SwitchExp)
	if !ok || len(sw.Arms) != 2 {
		t.Fatalf("Body = %v, want a 2-arm SwitchExp", p.Body)
	}
}
