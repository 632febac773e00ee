package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestValidatePasscode(t *testing.T) {
	tests := []struct {
		name     string
		code     string
		expected bool
	}{
		{"four digits", "4123", true},
		{"five digits", "56789", true},
		{"eight digits", "12345678", true},
		{"too short", "123", false},
		{"too long", "123456789", false},
		{"empty string", "", false},
		{"letters", "abcd", false},
		{"mixed", "12a4", false},
		{"digits with space", "12 34", false},
		{"negative sign", "-1234", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ValidatePasscode(tt.code)
			if result != tt.expected {
				t.Errorf("ValidatePasscode(%q) = %v, want %v", tt.code, result, tt.expected)
			}
		})
	}
}

func TestSanitizePasscode(t *testing.T) {
	tests := []struct {
		name     string
		code     string
		expected string
		wantErr  bool
	}{
		{"valid", "4123", "4123", false},
		{"trims whitespace", "  4123  ", "4123", false},
		{"empty allowed", "", "", false},
		{"whitespace only", "   ", "", false},
		{"invalid", "12ab", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := SanitizePasscode(tt.code)
			if (err != nil) != tt.wantErr {
				t.Fatalf("SanitizePasscode(%q) error = %v, wantErr %v", tt.code, err, tt.wantErr)
			}
			if result != tt.expected {
				t.Errorf("SanitizePasscode(%q) = %q, want %q", tt.code, result, tt.expected)
			}
		})
	}
}

func TestDefault(t *testing.T) {
	defaults := Default()

	if defaults.Passcode != "4123" {
		t.Errorf("Default Passcode = %q, want %q", defaults.Passcode, "4123")
	}
	if defaults.KeypadLength != 4 {
		t.Errorf("Default KeypadLength = %d, want 4", defaults.KeypadLength)
	}
	if filepath.Base(defaults.WallpaperPath) != DefaultWallpaperName {
		t.Errorf("Default WallpaperPath = %q, want a %q neighbour", defaults.WallpaperPath, DefaultWallpaperName)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)

	cfg := Config{
		Passcode:      "56789",
		WallpaperPath: "/tmp/beach.png",
		KeypadLength:  5,
	}

	if err := SaveTo(path, cfg); err != nil {
		t.Fatalf("SaveTo() error = %v", err)
	}

	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}

	if loaded.Passcode != cfg.Passcode {
		t.Errorf("Loaded Passcode = %q, want %q", loaded.Passcode, cfg.Passcode)
	}
	if loaded.WallpaperPath != cfg.WallpaperPath {
		t.Errorf("Loaded WallpaperPath = %q, want %q", loaded.WallpaperPath, cfg.WallpaperPath)
	}
	if loaded.KeypadLength != cfg.KeypadLength {
		t.Errorf("Loaded KeypadLength = %d, want %d", loaded.KeypadLength, cfg.KeypadLength)
	}
}

func TestLoadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)

	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() on missing file error = %v, want nil", err)
	}

	defaults := Default()
	if loaded.Passcode != defaults.Passcode {
		t.Errorf("Passcode = %q, want default %q", loaded.Passcode, defaults.Passcode)
	}
	if loaded.KeypadLength != defaults.KeypadLength {
		t.Errorf("KeypadLength = %d, want default %d", loaded.KeypadLength, defaults.KeypadLength)
	}
}

func TestLoadMalformed(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"broken json", `{"passcode": "4123",`},
		{"wrong passcode type", `{"passcode": 4123}`},
		{"wrong length type", `{"keypad_length": "four"}`},
		{"array instead of object", `[1, 2, 3]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), FileName)
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatal(err)
			}

			loaded, err := LoadFrom(path)
			if err == nil {
				t.Error("LoadFrom() on malformed file should report an error")
			}

			defaults := Default()
			if loaded.Passcode != defaults.Passcode || loaded.KeypadLength != defaults.KeypadLength {
				t.Errorf("malformed file should yield defaults, got %+v", loaded)
			}
		})
	}
}

func TestLoadClampsKeypadLength(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"zero", `{"passcode": "9999", "keypad_length": 0}`},
		{"negative", `{"passcode": "9999", "keypad_length": -3}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), FileName)
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatal(err)
			}

			loaded, err := LoadFrom(path)
			if err != nil {
				t.Fatalf("LoadFrom() error = %v", err)
			}

			if loaded.KeypadLength != DefaultKeypadLength {
				t.Errorf("KeypadLength = %d, want clamped to %d", loaded.KeypadLength, DefaultKeypadLength)
			}
			// The rest of the file is still honoured
			if loaded.Passcode != "9999" {
				t.Errorf("Passcode = %q, want %q", loaded.Passcode, "9999")
			}
		})
	}
}

func TestLoadToleratesHandEditedDrift(t *testing.T) {
	// A hand-edited file may disagree with itself; loading must not repair it.
	path := filepath.Join(t.TempDir(), FileName)
	content := `{"passcode": "56789", "keypad_length": 4}`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}

	if loaded.Passcode != "56789" {
		t.Errorf("Passcode = %q, want %q", loaded.Passcode, "56789")
	}
	if loaded.KeypadLength != 4 {
		t.Errorf("KeypadLength = %d, want 4 (drift preserved)", loaded.KeypadLength)
	}
}

func TestLoadIgnoresUnknownFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	content := `{"passcode": "4321", "theme": "dark", "version": 2}`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}

	if loaded.Passcode != "4321" {
		t.Errorf("Passcode = %q, want %q", loaded.Passcode, "4321")
	}
	if loaded.KeypadLength != DefaultKeypadLength {
		t.Errorf("KeypadLength = %d, want default %d", loaded.KeypadLength, DefaultKeypadLength)
	}
}

func TestSaveCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)

	if err := SaveTo(path, Default()); err != nil {
		t.Fatalf("SaveTo() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("config file not created: %v", err)
	}
	if !strings.Contains(string(data), `"passcode": "4123"`) {
		t.Errorf("saved file missing indented passcode field: %s", data)
	}
}

func TestApplyPasscodeChange(t *testing.T) {
	base := Config{Passcode: "4123", WallpaperPath: "w.jpg", KeypadLength: 4}

	tests := []struct {
		name         string
		req          ChangeRequest
		wantErr      string
		wantPasscode string
		wantLength   int
	}{
		{
			name:         "empty request is a no-op",
			req:          ChangeRequest{},
			wantPasscode: "4123",
			wantLength:   4,
		},
		{
			name:    "wrong current passcode",
			req:     ChangeRequest{Current: "0000", Next: "5678", Confirm: "5678"},
			wantErr: "Current passcode incorrect.",
		},
		{
			name:    "mismatched confirmation",
			req:     ChangeRequest{Current: "4123", Next: "5678", Confirm: "5679"},
			wantErr: "New passcode mismatch.",
		},
		{
			name:    "too short",
			req:     ChangeRequest{Current: "4123", Next: "123", Confirm: "123"},
			wantErr: "Passcode must be 4-8 digits.",
		},
		{
			name:    "too long",
			req:     ChangeRequest{Current: "4123", Next: "123456789", Confirm: "123456789"},
			wantErr: "Passcode must be 4-8 digits.",
		},
		{
			name:    "non-digit",
			req:     ChangeRequest{Current: "4123", Next: "12ab", Confirm: "12ab"},
			wantErr: "Passcode must be 4-8 digits.",
		},
		{
			name:         "valid change recomputes length",
			req:          ChangeRequest{Current: "4123", Next: "56789", Confirm: "56789"},
			wantPasscode: "56789",
			wantLength:   5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ApplyPasscodeChange(base, tt.req)

			if tt.wantErr != "" {
				if err == nil {
					t.Fatalf("ApplyPasscodeChange() error = nil, want %q", tt.wantErr)
				}
				if err.Error() != tt.wantErr {
					t.Errorf("error = %q, want %q", err.Error(), tt.wantErr)
				}
				// Failed validation must leave the config untouched
				if got != base {
					t.Errorf("config mutated on failure: %+v", got)
				}
				return
			}

			if err != nil {
				t.Fatalf("ApplyPasscodeChange() error = %v", err)
			}
			if got.Passcode != tt.wantPasscode {
				t.Errorf("Passcode = %q, want %q", got.Passcode, tt.wantPasscode)
			}
			if got.KeypadLength != tt.wantLength {
				t.Errorf("KeypadLength = %d, want %d", got.KeypadLength, tt.wantLength)
			}
			if got.WallpaperPath != base.WallpaperPath {
				t.Errorf("WallpaperPath changed unexpectedly to %q", got.WallpaperPath)
			}
		})
	}
}
