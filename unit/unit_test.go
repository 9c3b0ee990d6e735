// SPDX-License-Identifier: Unlicense OR MIT

package unit

import "testing"

func TestValueString(t *testing.T) {
	for _, tc := range []struct {
		value Value
		want  string
	}{
		{Px(0), "0px"},
		{Px(120), "120px"},
		{Px(-91.25), "-91.25px"},
		{Percent(50), "50%"},
		{Percent(-100), "-100%"},
	} {
		if got := tc.value.String(); got != tc.want {
			t.Errorf("String(%#v) = %q, want %q", tc.value, got, tc.want)
		}
	}
}

func TestParse(t *testing.T) {
	for _, tc := range []struct {
		s       string
		want    Value
		wantErr bool
	}{
		{s: "50%", want: Percent(50)},
		{s: "120px", want: Px(120)},
		{s: "-91.25px", want: Px(-91.25)},
		{s: "42", want: Px(42)},
		{s: " 10 px", want: Px(10)},
		{s: "abc%", wantErr: true},
		{s: "px", wantErr: true},
		{s: "", wantErr: true},
	} {
		got, err := Parse(tc.s)
		if tc.wantErr {
			if err == nil {
				t.Errorf("Parse(%q): expected error", tc.s)
			}
			continue
		}
		if err != nil {
			t.Errorf("Parse(%q): %v", tc.s, err)
			continue
		}
		if got != tc.want {
			t.Errorf("Parse(%q) = %v, want %v", tc.s, got, tc.want)
		}
	}
}

func TestParseUnit(t *testing.T) {
	for _, tc := range []struct {
		s       string
		want    Unit
		wantErr bool
	}{
		{s: "px", want: UnitPx},
		{s: "", want: UnitPx},
		{s: "%", want: UnitPercent},
		{s: "percent", want: UnitPercent},
		{s: "em", wantErr: true},
	} {
		got, err := ParseUnit(tc.s)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseUnit(%q): expected error", tc.s)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseUnit(%q): %v", tc.s, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseUnit(%q) = %v, want %v", tc.s, got, tc.want)
		}
	}
}
