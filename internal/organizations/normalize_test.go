package organizations

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Acme Corp", "acme_corp"},
		{"acme-corp", "acme_corp"},
		{"  Spaced Out  ", "spaced_out"},
		{"already_normal", "already_normal"},
		{"MiXeD-Case Name", "mixed_case_name"},
	}
	for _, tt := range tests {
		if output := Normalize(tt.input); output != tt.expected {
			t.Errorf("expected Normalize(%q) to be %q, got %q", tt.input, tt.expected, output)
		}
	}
}

func TestNormalize_idempotent(t *testing.T) {
	for _, input := range []string{
		"Acme Corp",
		"acme-corp",
		"plain",
		"  Spaced Out  ",
	} {
		once := Normalize(input)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("expected Normalize to be idempotent for %q, got %q then %q", input, once, twice)
		}
	}
}

func TestGetPartitionKey(t *testing.T) {
	if key := GetPartitionKey("acme_corp"); key != "org_acme_corp" {
		t.Errorf("expected partition key to be org_acme_corp, got %s", key)
	}
}
