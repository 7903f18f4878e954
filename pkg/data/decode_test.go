package data_test

import (
	"errors"
	"testing"

	"github.com/goliatone/go-weave/pkg/data"
)

func TestDecodeJSON(t *testing.T) {
	value, err := data.Decode(data.FormatJSON, []byte(`{"title":"Report","count":2,"draft":false,"tags":["a","b"],"meta":null}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	if value.Kind() != data.KindObject {
		t.Fatalf("kind = %s, want object", value.Kind())
	}
	title, _ := value.Field("title")
	if title.Str() != "Report" {
		t.Fatalf("title = %s", title)
	}
	count, _ := value.Field("count")
	if count.Number() != 2 {
		t.Fatalf("count = %s", count)
	}
	draft, _ := value.Field("draft")
	if draft.Kind() != data.KindBool || draft.Bool() {
		t.Fatalf("draft = %s", draft)
	}
	tags, _ := value.Field("tags")
	if tags.Kind() != data.KindSequence || tags.Len() != 2 {
		t.Fatalf("tags = %s", tags)
	}
	meta, ok := value.Field("meta")
	if !ok || !meta.IsNull() {
		t.Fatalf("meta = %s (present=%v), want null", meta, ok)
	}
}

func TestDecodeYAML(t *testing.T) {
	payload := []byte("title: Report\nnested:\n  flag: true\nitems:\n  - 1\n  - 2.5\n")
	value, err := data.Decode(data.FormatYAML, payload)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	flag, ok := value.Lookup(data.MustParsePath("nested.flag"))
	if !ok || !flag.Bool() {
		t.Fatalf("nested.flag = %s (present=%v)", flag, ok)
	}
	second, ok := value.Lookup(data.MustParsePath("items[1]"))
	if !ok || second.Number() != 2.5 {
		t.Fatalf("items[1] = %s (present=%v)", second, ok)
	}
}

func TestDecodeJSONCStripsComments(t *testing.T) {
	payload := []byte("{\n  // release channel\n  \"channel\": \"stable\", /* trailing */\n  \"level\": 3,\n}\n")
	value, err := data.Decode(data.FormatJSONC, payload)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	channel, _ := value.Field("channel")
	if channel.Str() != "stable" {
		t.Fatalf("channel = %s", channel)
	}
	level, _ := value.Field("level")
	if level.Number() != 3 {
		t.Fatalf("level = %s", level)
	}
}

func TestDecodeEmptyInputIsNull(t *testing.T) {
	cases := []struct {
		name    string
		format  data.Format
		payload string
	}{
		{"empty json", data.FormatJSON, ""},
		{"whitespace json", data.FormatJSON, "  \n\t"},
		{"empty yaml", data.FormatYAML, ""},
		{"comment-only jsonc", data.FormatJSONC, "// nothing here\n"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			value, err := data.Decode(tc.format, []byte(tc.payload))
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			if !value.IsNull() {
				t.Fatalf("value = %s, want null", value)
			}
		})
	}
}

func TestDecodeMalformedJSONReportsPosition(t *testing.T) {
	_, err := data.Decode(data.FormatJSON, []byte("{\n  \"a\": 1,\n  \"b\": }\n"))
	if err == nil {
		t.Fatal("expected parse error")
	}

	var parseErr *data.ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("error type %T, want *data.ParseError", err)
	}
	if parseErr.Format != data.FormatJSON {
		t.Fatalf("format = %s", parseErr.Format)
	}
	if parseErr.Line != 3 {
		t.Fatalf("line = %d, want 3 (%v)", parseErr.Line, parseErr)
	}
	if parseErr.Column == 0 {
		t.Fatalf("column missing: %v", parseErr)
	}
}

func TestDecodeMalformedYAMLReportsLine(t *testing.T) {
	_, err := data.Decode(data.FormatYAML, []byte("ok: 1\nbroken: [a, b\n"))
	if err == nil {
		t.Fatal("expected parse error")
	}

	var parseErr *data.ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("error type %T, want *data.ParseError", err)
	}
	if parseErr.Line == 0 {
		t.Fatalf("line missing: %v", parseErr)
	}
}

func TestDecodeRejectsUnknownFormat(t *testing.T) {
	if _, err := data.Decode(data.Format("toml"), []byte("x = 1")); err == nil {
		t.Fatal("expected unsupported format error")
	}
}
