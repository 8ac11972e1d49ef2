package translate

import "testing"

func TestParseGtxResponseJoinsSegments(t *testing.T) {
	body := []byte(`[[["Kumusta ","Hello ",null],["mundo","world",null]],null,"en"]`)
	if got := parseGtxResponse(body); got != "Kumusta mundo" {
		t.Fatalf("parseGtxResponse = %q, want %q", got, "Kumusta mundo")
	}
}

func TestParseGtxResponseMalformed(t *testing.T) {
	for _, body := range []string{"", "not json", "[]", `["flat"]`} {
		if got := parseGtxResponse([]byte(body)); got != "" {
			t.Fatalf("parseGtxResponse(%q) = %q, want empty", body, got)
		}
	}
}

func TestTranslateEmptyTextReturnsEmpty(t *testing.T) {
	tr := New()
	if got := tr.Translate("   ", TargetFilipino); got != "" {
		t.Fatalf("Translate(blank) = %q, want empty", got)
	}
}
