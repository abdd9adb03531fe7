package serial

import (
	"strconv"

	"github.com/tidwall/sjson"

	"github.com/rljacobson/cps/internal/interp/runtime"
)

// EncodeAnswer renders a runtime.Answer as a small JSON document for
// `cpsi run`/`cpsi trace` output: {"kind": "...", "value": ...} for a
// single-value answer, or {"kind": "tuple", "values": [...]} when the
// program's top continuation was invoked with more than one argument (see
// runtime.TopLevelContinuation). Built incrementally with sjson.Set rather
// than a struct marshal, since the shape depends on what came back.
func EncodeAnswer(answer runtime.Answer) (string, error) {
	switch v := answer.(type) {
	case nil:
		return sjson.Set("{}", "kind", "unit")

	case runtime.Value:
		kind, value := valueFields(v)
		doc, err := sjson.Set("{}", "kind", kind)
		if err != nil {
			return "", err
		}
		return sjson.Set(doc, "value", value)

	case []runtime.Value:
		doc, err := sjson.Set("{}", "kind", "tuple")
		if err != nil {
			return "", err
		}
		for i, elem := range v {
			kind, value := valueFields(elem)
			path := "values." + strconv.Itoa(i) + "."
			if doc, err = sjson.Set(doc, path+"kind", kind); err != nil {
				return "", err
			}
			if doc, err = sjson.Set(doc, path+"value", value); err != nil {
				return "", err
			}
		}
		return doc, nil

	default:
		return sjson.Set("{}", "kind", "opaque")
	}
}

func valueFields(v runtime.Value) (kind string, value any) {
	switch vv := v.(type) {
	case *runtime.IntegerValue:
		return "int", vv.Value
	case *runtime.RealValue:
		return "real", vv.Value
	case *runtime.StringValue:
		return "string", vv.Value
	case *runtime.ExceptionValue:
		return "exception", vv.Tag.Inspect()
	default:
		return v.Type(), v.Inspect()
	}
}

// TraceStep renders one numbered trace note for `cpsi trace` output (the
// command emits a single note, step 0, for the top-level call).
func TraceStep(n int, note string) (string, error) {
	doc, err := sjson.Set("{}", "step", n)
	if err != nil {
		return "", err
	}
	return sjson.Set(doc, "note", note)
}
