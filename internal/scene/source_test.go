package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPreprocessSource(t *testing.T) {
	type tc struct {
		input string
		want  string
	}

	tests := map[string]tc{
		"keyword": {
			input: `(flex :axis :x)`,
			want:  `(flex "__kw_axis" "__kw_x")`,
		},
		"kebab keyword": {
			input: `(flex :align-y :center)`,
			want:  `(flex "__kw_align-y" "__kw_center")`,
		},
		"kebab identifier": {
			input: `(def row-gap 1)`,
			want:  `(def row_gap 1)`,
		},
		"subtraction kept": {
			input: `(- 10 5)`,
			want:  `(- 10 5)`,
		},
		"negative number kept": {
			input: `(leaf -1 2 0)`,
			want:  `(leaf -1 2 0)`,
		},
		"assignment kept": {
			input: `(def x := 10)`,
			want:  `(def x := 10)`,
		},
		"strings untouched": {
			input: `(text "a :b c-d ; e")`,
			want:  `(text "a :b c-d ; e")`,
		},
		"escaped quote": {
			input: `(text "say \"hi\" :now")`,
			want:  `(text "say \"hi\" :now")`,
		},
		"comment": {
			input: ";; header\n(leaf 1 1 1)",
			want:  "// header\n(leaf 1 1 1)",
		},
		"unterminated string": {
			input: `(text "abc`,
			want:  `(text "abc`,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, preprocessSource(tt.input))
		})
	}
}
