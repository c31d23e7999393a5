package types

import (
	"encoding/json"
	"testing"
)

func TestValidateRef(t *testing.T) {
	t.Parallel()
	cases := []struct {
		in InteractionRef
		ok bool
	}{
		{ByID("abc-123"), true}, {ByID(""), false}, {ByID("  "), false},
		{ByID("a/b"), false}, {ByID("a?b"), false}, {nil, false},
		{&Interaction{}, false},
	}
	for _, c := range cases {
		_, err := ValidateRef(c.in)
		if c.ok && err != nil {
			t.Fatalf("expected ok for %v, got %v", c.in, err)
		}
		if !c.ok && err == nil {
			t.Fatalf("expected error for %v", c.in)
		}
	}
}

func TestValidateDeclare(t *testing.T) {
	t.Parallel()
	ok := DeclareRequest{LanguageTag: "en-us", Vertical: "default", AudioTranscriptionMode: "highAccuracy"}
	if err := ValidateDeclare(ok); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	bad := ok
	bad.Vertical = ""
	if err := ValidateDeclare(bad); err == nil {
		t.Fatal("expected error for empty vertical")
	}
}

func TestDeclarePayload_DownloadURL(t *testing.T) {
	t.Parallel()
	req := DeclareRequest{LanguageTag: "en-us", Vertical: "default", AudioTranscriptionMode: "highAccuracy"}

	b, _ := json.Marshal(req.Payload())
	var m map[string]any
	_ = json.Unmarshal(b, &m)
	if m["type"] != "audio" || m["includeAiResults"] != true {
		t.Fatalf("unexpected payload %s", b)
	}
	if _, ok := m["downloadUrl"]; ok {
		t.Fatalf("downloadUrl must be omitted without a media URI: %s", b)
	}

	req.MediaURI = "https://example.com/a.wav?sig=1&x=2"
	b, _ = json.Marshal(req.Payload())
	m = nil
	_ = json.Unmarshal(b, &m)
	if m["downloadUrl"] != req.MediaURI {
		t.Fatalf("downloadUrl not verbatim: %s", b)
	}
}
