package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateMeta(t *testing.T) {
	tooManyKeys := make(map[string]interface{})
	for i := 0; i < MetaMaxKeys+1; i++ {
		tooManyKeys[strings.Repeat("k", i+1)] = "v"
	}

	deeplyNested := map[string]interface{}{
		"a": map[string]interface{}{
			"b": map[string]interface{}{
				"c": map[string]interface{}{
					"d": map[string]interface{}{"e": "too deep"},
				},
			},
		},
	}

	tests := []struct {
		name    string
		meta    map[string]interface{}
		wantErr bool
	}{
		{name: "nil meta", meta: nil, wantErr: false},
		{name: "empty meta", meta: map[string]interface{}{}, wantErr: false},
		{
			name: "flat values",
			meta: map[string]interface{}{
				"name":  "김철수",
				"gpa":   3.7,
				"fresh": true,
				"note":  nil,
			},
			wantErr: false,
		},
		{
			name: "nested within bounds",
			meta: map[string]interface{}{
				"profile": map[string]interface{}{
					"certs": []interface{}{"TOEIC", "TOEFL"},
				},
			},
			wantErr: false,
		},
		{name: "too many keys", meta: tooManyKeys, wantErr: true},
		{name: "nesting too deep", meta: deeplyNested, wantErr: true},
		{
			name:    "string too long",
			meta:    map[string]interface{}{"blob": strings.Repeat("x", MetaMaxStringLen+1)},
			wantErr: true,
		},
		{
			name:    "unsupported value type",
			meta:    map[string]interface{}{"ch": make(chan int)},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateMeta(tt.meta)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
