package lookup

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/samber/lo"

	"github.com/nao1215/lookupbot/internal/model"
)

// Classify maps a decoded JSON payload onto a Result.
// payload is expected to come from encoding/json decoding into an any,
// optionally with UseNumber.
func Classify(payload any) model.Result {
	switch v := payload.(type) {
	case nil:
		return model.EmptyResult()

	case map[string]any:
		if msg, ok := v[model.FieldError]; ok && truthy(msg) {
			return model.ErrorResult(&UpstreamError{Message: describe(msg)})
		}
		if len(v) == 0 {
			return model.EmptyResult()
		}
		return model.RecordsResult([]model.Record{model.Record(v)})

	case []any:
		records := lo.FilterMap(v, func(item any, _ int) (model.Record, bool) {
			m, ok := item.(map[string]any)
			return model.Record(m), ok
		})
		return model.RecordsResult(records)

	default:
		if !truthy(v) {
			return model.EmptyResult()
		}
		return model.ErrorResult(fmt.Errorf("%w: unexpected %T payload", ErrMalformedResponse, v))
	}
}

// truthy reports whether a decoded JSON value counts as set.
// null, false, "", 0, {} and [] are not.
func truthy(v any) bool {
	switch val := v.(type) {
	case nil:
		return false
	case bool:
		return val
	case string:
		return val != ""
	case json.Number:
		f, err := strconv.ParseFloat(val.String(), 64)
		return err != nil || f != 0
	case float64:
		return val != 0
	case map[string]any:
		return len(val) > 0
	case []any:
		return len(val) > 0
	default:
		return true
	}
}

// describe renders an API error value as text.
func describe(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	if n, ok := v.(json.Number); ok {
		return n.String()
	}
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(b)
}
