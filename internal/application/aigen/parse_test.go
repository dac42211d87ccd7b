package aigen

import (
	"reflect"
	"testing"
)

func TestParseNumberedList(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want []string
	}{
		{
			name: "four candidates",
			raw:  "1. Alpha\n2. Beta\n3. Gamma\n4. Delta",
			want: []string{"Alpha", "Beta", "Gamma", "Delta"},
		},
		{
			name: "empty input",
			raw:  "",
			want: []string{},
		},
		{
			name: "blank numbered line dropped",
			raw:  "1. \n2. Beta",
			want: []string{"Beta"},
		},
		{
			name: "whitespace and unnumbered lines",
			raw:  "  1.  第一个标题  \n\n不带编号的行\n10. 第十个",
			want: []string{"第一个标题", "不带编号的行", "第十个"},
		},
		{
			name: "order preserved without dedup",
			raw:  "1. 同一个\n2. 同一个",
			want: []string{"同一个", "同一个"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ParseNumberedList(tc.raw); !reflect.DeepEqual(got, tc.want) {
				t.Errorf("ParseNumberedList(%q) = %v, want %v", tc.raw, got, tc.want)
			}
		})
	}
}
