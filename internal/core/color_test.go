package core

import "testing"

func TestColorByName(t *testing.T) {
	tests := []struct {
		name string
		want Color
		ok   bool
	}{
		{"default", ColorDefault, true},
		{"red_3", ColorRed3, true},
		{"YELLOW_1", ColorYellow1, true},
		{"grey_2", ColorGrey2, true},
		{"gray_1", ColorGrey1, true},
		{" cyan_5 ", ColorCyan5, true},
		{"magenta", ColorDefault, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ColorByName(tc.name)
			if got != tc.want || ok != tc.ok {
				t.Errorf("ColorByName(%q) = (%v, %v), expected (%v, %v)", tc.name, got, ok, tc.want, tc.ok)
			}
		})
	}
}

func TestColorString(t *testing.T) {
	if ColorPurple4.String() != "purple_4" {
		t.Errorf("String() = %q", ColorPurple4.String())
	}
	if Color(250).String() != "default" {
		t.Error("unknown colors should print as default")
	}
}

func TestColorShade(t *testing.T) {
	if got := ColorYellow1.Shade(4); got != ColorYellow4 {
		t.Errorf("Shade(4) = %v, expected yellow_4", got)
	}
	if got := ColorGreen5.Shade(1); got != ColorGreen1 {
		t.Errorf("Shade(1) = %v, expected green_1", got)
	}
	if got := ColorRed2.Shade(9); got != ColorRed5 {
		t.Errorf("Shade should clamp, got %v", got)
	}
	if got := ColorGrey1.Shade(3); got != ColorGrey1 {
		t.Errorf("grey has no shades, got %v", got)
	}
}
