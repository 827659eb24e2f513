package core

import (
	"strings"
	"testing"
)

func TestAPIVersion(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "2.96", want: "v2"},
		{in: "3.0", want: "v3"},
		{in: "v2.1", want: "v2"},
		{in: "1", want: "v1"},
		{in: " 2.0 ", want: "v2"},
		{in: "", wantErr: true},
		{in: "latest", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := APIVersion(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("APIVersion(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("APIVersion(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestToolVersion(t *testing.T) {
	v := ToolVersion()
	if v == "" {
		t.Error("ToolVersion() should not return empty string")
	}
	if strings.ContainsAny(v, "\r\n") {
		t.Error("ToolVersion() should not contain newline characters")
	}
}
