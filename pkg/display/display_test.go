package display

import "testing"

func TestDetectAlwaysReturnsADisplay(t *testing.T) {
	t.Setenv(EnvDisplays, "")

	displays := Detect()
	if len(displays) < 1 {
		t.Fatal("Detect returned no displays")
	}
	if !displays[0].Primary {
		t.Error("first display should be primary")
	}
}

func TestDetectEnvOverride(t *testing.T) {
	tests := []struct {
		name string
		env  string
		want int
	}{
		{"three heads", "3", 3},
		{"one head", "1", 1},
		{"garbage ignored", "lots", 1},
		{"zero ignored", "0", 1},
		{"negative ignored", "-2", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvDisplays, tt.env)

			displays := Detect()
			if len(displays) < tt.want {
				t.Errorf("got %d displays, want at least %d", len(displays), tt.want)
			}
			for i, d := range displays {
				if d.Index != i {
					t.Errorf("display %d has index %d", i, d.Index)
				}
				if d.Primary != (i == 0) {
					t.Errorf("display %d primary = %v", i, d.Primary)
				}
			}
		})
	}
}
