package parse

import "testing"

func TestParseBasicStrings(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`""`, ""},
		{`"hello"`, "hello"},
		{`"tab\tnewline\n"`, "tab\tnewline\n"},
		{`"quote \" backslash \\"`, "quote \" backslash \\"},
		{`"\u00E9"`, "\u00e9"},
		{`"\U0001F600"`, "\U0001f600"},
		{`"unicode snowman \u2603"`, "unicode snowman \u2603"},
		{"\"caf\u00e9\"", "caf\u00e9"},
	}
	for _, tc := range tests {
		v := leafValue(t, tc.in)
		if v.Str != tc.want {
			t.Errorf("%s: got %q want %q", tc.in, v.Str, tc.want)
		}
	}
}

func TestParseBadBasicStrings(t *testing.T) {
	for _, src := range []string{
		`"unterminated`,
		"\"raw\nnewline\"",
		`"bad \q escape"`,
		`"\uD800"`,
		`"\u12"`,
		`"\UFFFFFFFF"`,
		"\"ctrl \x01\"",
	} {
		mustFail(t, "v = "+src+"\n")
	}
}

func TestParseMultilineBasic(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"\"\"\"abc\"\"\"", "abc"},
		{"\"\"\"\nfirst line trimmed\"\"\"", "first line trimmed"},
		{"\"\"\"two\nlines\"\"\"", "two\nlines"},
		{"\"\"\"quote \" inside\"\"\"", "quote \" inside"},
		{"\"\"\"two \"\" inside\"\"\"", "two \"\" inside"},
		{"\"\"\"ends with quote \"\"\"\"", "ends with quote \""},
		{"\"\"\"ends with two \"\"\"\"\"", "ends with two \"\""},
		{"\"\"\"\"\"\"", ""},
		{"\"\"\"a \\\n   b\"\"\"", "a b"},
		{"\"\"\"a \\\n\n   \n  b\"\"\"", "a b"},
	}
	for _, tc := range tests {
		v := leafValue(t, tc.in)
		if v.Str != tc.want {
			t.Errorf("%s: got %q want %q", tc.in, v.Str, tc.want)
		}
	}
}

func TestParseLiteralStrings(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`''`, ""},
		{`'no \escape'`, `no \escape`},
		{`'C:\Users\nodejs'`, `C:\Users\nodejs`},
		{`'"quoted"'`, `"quoted"`},
		{"'''\nmulti\nline'''", "multi\nline"},
		{"'''with 'one' quote'''", "with 'one' quote"},
		{"'''ends with ''''", "ends with '"},
		{"''''''", ""},
	}
	for _, tc := range tests {
		v := leafValue(t, tc.in)
		if v.Str != tc.want {
			t.Errorf("%s: got %q want %q", tc.in, v.Str, tc.want)
		}
	}
}

func TestParseBadLiteralStrings(t *testing.T) {
	for _, src := range []string{
		"'unterminated",
		"'raw\nnewline'",
	} {
		mustFail(t, "v = "+src+"\n")
	}
}
