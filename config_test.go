package main

import "testing"

func TestLoadConfig_Defaults(t *testing.T) {
	cfg := LoadConfig()

	if cfg.DevMode {
		t.Error("DevMode = true, want false by default")
	}
	if cfg.LogFile != defaultLogFile {
		t.Errorf("LogFile = %q, want %q", cfg.LogFile, defaultLogFile)
	}
	if cfg.OutputDir != defaultOutputDir {
		t.Errorf("OutputDir = %q, want %q", cfg.OutputDir, defaultOutputDir)
	}
	if cfg.BrightnessDelta != defaultBrightnessDelta {
		t.Errorf("BrightnessDelta = %d, want %d", cfg.BrightnessDelta, defaultBrightnessDelta)
	}
	if cfg.ContrastFactor != defaultContrastFactor {
		t.Errorf("ContrastFactor = %g, want %g", cfg.ContrastFactor, defaultContrastFactor)
	}
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("DEV_MODE", "true")
	t.Setenv("LOG_FILE", "custom.log")
	t.Setenv("OUTPUT_DIR", "out")
	t.Setenv("DEMO_BRIGHTNESS_DELTA", "-20")
	t.Setenv("DEMO_CONTRAST_FACTOR", "0.75")

	cfg := LoadConfig()

	if !cfg.DevMode {
		t.Error("DevMode = false, want true")
	}
	if cfg.LogFile != "custom.log" {
		t.Errorf("LogFile = %q, want %q", cfg.LogFile, "custom.log")
	}
	if cfg.OutputDir != "out" {
		t.Errorf("OutputDir = %q, want %q", cfg.OutputDir, "out")
	}
	if cfg.BrightnessDelta != -20 {
		t.Errorf("BrightnessDelta = %d, want -20", cfg.BrightnessDelta)
	}
	if cfg.ContrastFactor != 0.75 {
		t.Errorf("ContrastFactor = %g, want 0.75", cfg.ContrastFactor)
	}
}

func TestParseBoolEnv(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"true", true},
		{"TRUE", true},
		{"1", true},
		{"yes", true},
		{"on", true},
		{"false", false},
		{"0", false},
		{"no", false},
		{"off", false},
		{"garbage", true}, // falls back to the default
		{"", true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv("PIXPROC_TEST_BOOL", tt.value)
			if got := parseBoolEnv("PIXPROC_TEST_BOOL", true); got != tt.want {
				t.Errorf("parseBoolEnv(%q) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestParseEnv_Malformed(t *testing.T) {
	t.Setenv("PIXPROC_TEST_INT", "not-a-number")
	if got := parseIntEnv("PIXPROC_TEST_INT", 42); got != 42 {
		t.Errorf("parseIntEnv() = %d, want the default 42", got)
	}

	t.Setenv("PIXPROC_TEST_FLOAT", "1.5.3")
	if got := parseFloatEnv("PIXPROC_TEST_FLOAT", 2.5); got != 2.5 {
		t.Errorf("parseFloatEnv() = %g, want the default 2.5", got)
	}
}
