package evaluator

import (
	"github.com/rljacobson/cps/internal/ast"
	cpserrors "github.com/rljacobson/cps/internal/interp/errors"
	"github.com/rljacobson/cps/internal/interp/runtime"
)

// F resolves an AccessPath against a denotable value, per spec.md §4.3:
//
//	F(x, Off(0))              = x
//	F(Record(els,i), Off(j))  = Record(els, i+j)
//	F(Record(els,i), Sel(j,p)) = F(els[i+j], p)
//
// Any other combination is undefined; this implementation panics with an
// ImplementationError, since it always indicates a malformed CPS program
// (a Sel/nonzero-Off path applied to a non-Record).
func F(x runtime.Value, path ast.AccessPath) runtime.Value {
	switch p := path.(type) {
	case ast.Off:
		if p.K == 0 {
			return x
		}
		rec, ok := x.(*runtime.RecordValue)
		if !ok {
			panic(cpserrors.NewAccessPath("Off on non-Record"))
		}
		return &runtime.RecordValue{Elements: rec.Elements, Base: rec.Base + p.K}
	case ast.Sel:
		rec, ok := x.(*runtime.RecordValue)
		if !ok {
			panic(cpserrors.NewAccessPath("Sel on non-Record"))
		}
		return F(rec.At(p.K), p.Path)
	default:
		panic(cpserrors.NewAccessPath("unknown access path"))
	}
}
