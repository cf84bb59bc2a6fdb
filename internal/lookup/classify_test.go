package lookup

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/nao1215/lookupbot/internal/model"
)

// decode parses body the same way Client.Lookup does.
func decode(t *testing.T, body string) any {
	t.Helper()

	dec := json.NewDecoder(strings.NewReader(body))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		t.Fatalf("decode %s: %v", body, err)
	}
	return v
}

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		body      string
		wantKind  model.Kind
		wantCount int
		wantErr   error
	}{
		{name: "null", body: `null`, wantKind: model.KindEmpty},
		{name: "empty object", body: `{}`, wantKind: model.KindEmpty},
		{name: "empty array", body: `[]`, wantKind: model.KindEmpty},
		{name: "empty string", body: `""`, wantKind: model.KindEmpty},
		{name: "zero", body: `0`, wantKind: model.KindEmpty},
		{name: "false", body: `false`, wantKind: model.KindEmpty},
		{name: "object", body: `{"name":"a"}`, wantKind: model.KindRecords, wantCount: 1},
		{name: "array of objects", body: `[{"name":"a"},{"name":"b"}]`, wantKind: model.KindRecords, wantCount: 2},
		{name: "non-object elements dropped", body: `[{"name":"a"},3,"x"]`, wantKind: model.KindRecords, wantCount: 1},
		{name: "array of scalars", body: `[1,2]`, wantKind: model.KindEmpty},
		{name: "error string", body: `{"error":"invalid key"}`, wantKind: model.KindError, wantErr: ErrUpstream},
		{name: "error true", body: `{"error":true}`, wantKind: model.KindError, wantErr: ErrUpstream},
		{name: "falsy error with data", body: `{"error":"","name":"a"}`, wantKind: model.KindRecords, wantCount: 1},
		{name: "truthy string", body: `"unexpected"`, wantKind: model.KindError, wantErr: ErrMalformedResponse},
		{name: "truthy number", body: `42`, wantKind: model.KindError, wantErr: ErrMalformedResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res := Classify(decode(t, tt.body))
			if res.Kind != tt.wantKind {
				t.Fatalf("expected kind %v, got %v (%v)", tt.wantKind, res.Kind, res.Err)
			}
			if res.Count() != tt.wantCount {
				t.Errorf("expected %d records, got %d", tt.wantCount, res.Count())
			}
			if tt.wantErr != nil && !errors.Is(res.Err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, res.Err)
			}
		})
	}
}

func TestUpstreamErrorMessage(t *testing.T) {
	t.Parallel()

	res := Classify(decode(t, `{"error":{"code":7}}`))
	if res.Err == nil || res.Err.Error() != `{"code":7}` {
		t.Errorf("expected JSON rendering of error value, got %v", res.Err)
	}
}
