package format

import (
	"errors"
	"testing"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{in: "json", want: JSONFormat},
		{in: "j", want: JSONFormat},
		{in: "yaml", want: YAMLFormat},
		{in: "yml", want: YAMLFormat},
		{in: "y", want: YAMLFormat},
		{in: "toml", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrBadFormat) {
					t.Fatalf("ParseFormat(%q) err = %v, want ErrBadFormat", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseFormat(%q): %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseFormat(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestFromSuffix(t *testing.T) {
	tests := map[string]Format{
		"a.yaml":       YAMLFormat,
		"dir/a.yml":    YAMLFormat,
		"a.json":       JSONFormat,
		"noext":        YAMLFormat,
		"a.txt":        YAMLFormat,
		"a.json.bak":   YAMLFormat,
		"dir.json/doc": YAMLFormat,
	}
	for name, want := range tests {
		if got := FromSuffix(name); got != want {
			t.Errorf("FromSuffix(%q) = %v, want %v", name, got, want)
		}
	}
}
