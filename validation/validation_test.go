package validation

import "testing"

type askRequest struct {
	Query string `json:"query" validate:"required,max=10"`
}

func TestStruct(t *testing.T) {
	tests := []struct {
		name string
		req  askRequest
		want Violations
	}{
		{"ok", askRequest{Query: "revenue"}, Violations{}},
		{"missing", askRequest{}, Violations{"query": "required"}},
		{"too long", askRequest{Query: "how many orders"}, Violations{"query": "max"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Struct(tt.req)
			if len(got) != len(tt.want) {
				t.Fatalf("Struct() = %v, want %v", got, tt.want)
			}
			for k, v := range tt.want {
				if got[k] != v {
					t.Errorf("Struct()[%q] = %q, want %q", k, got[k], v)
				}
			}
		})
	}
}

func TestBasicValidators(t *testing.T) {
	v := Violations{}
	Required("query", "   ", v)
	MaxLength("name", "abcdef", 3, v)
	OneOf("type", "pie", []string{"summary", "customer"}, v)

	if v["query"] != "required" || v["name"] != "too_long" || v["type"] != "not_allowed" {
		t.Errorf("unexpected violations %v", v)
	}

	ok := Violations{}
	OneOf("type", "summary", []string{"summary", "customer"}, ok)
	if !ok.Empty() {
		t.Errorf("expected no violations, got %v", ok)
	}
}
