package evaluator

import (
	cpserrors "github.com/rljacobson/cps/internal/interp/errors"
	"github.com/rljacobson/cps/internal/interp/runtime"
)

func typeMismatch(op string, v runtime.Value) error {
	return cpserrors.NewTypeMismatch(op, v.Type())
}
