// SPDX-License-Identifier: MPL-2.0

package cueutil_test

import (
	"strings"
	"testing"

	"localescope/pkg/cueutil"
)

const testSchema = `
#Config: {
	disabled?: bool
	key_style?: "auto" | "nested" | "flat"
	frameworks?: [...string]
}
`

func TestValidateToMap(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    string
		wantErr string
	}{
		{
			name: "valid config",
			data: `disabled: false, key_style: "nested"`,
		},
		{
			name: "empty config",
			data: ``,
		},
		{
			name:    "wrong type",
			data:    `disabled: "yes"`,
			wantErr: "disabled",
		},
		{
			name:    "out of enum",
			data:    `key_style: "sideways"`,
			wantErr: "key_style",
		},
		{
			name:    "syntax error",
			data:    `disabled: {{`,
			wantErr: "config.cue",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := cueutil.ValidateToMap(testSchema, []byte(tt.data), "#Config", "config.cue")

			if tt.wantErr != "" {
				if err == nil {
					t.Fatalf("ValidateToMap() succeeded with %v, want error containing %q", got, tt.wantErr)
				}
				if !strings.Contains(err.Error(), tt.wantErr) {
					t.Errorf("ValidateToMap() error = %v, want it to mention %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ValidateToMap() error: %v", err)
			}
		})
	}
}

func TestValidateToMap_DecodesValues(t *testing.T) {
	t.Parallel()

	got, err := cueutil.ValidateToMap(testSchema, []byte(`frameworks: ["vue", "laravel"]`), "#Config", "config.cue")
	if err != nil {
		t.Fatalf("ValidateToMap() error: %v", err)
	}

	raw, ok := got["frameworks"].([]any)
	if !ok || len(raw) != 2 {
		t.Fatalf("frameworks = %v, want two entries", got["frameworks"])
	}
}

func TestCheckFileSize(t *testing.T) {
	t.Parallel()

	if err := cueutil.CheckFileSize(make([]byte, 10), 100, "x.cue"); err != nil {
		t.Errorf("CheckFileSize() under limit error: %v", err)
	}
	if err := cueutil.CheckFileSize(make([]byte, 101), 100, "x.cue"); err == nil {
		t.Error("CheckFileSize() over limit succeeded, want error")
	}
}
