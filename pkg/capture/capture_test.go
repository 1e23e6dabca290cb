package capture

import "testing"

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name:    "defaults",
			cfg:     DefaultConfig(),
			wantErr: false,
		},
		{
			name:    "negative device id",
			cfg:     Config{DeviceID: -1, Width: 1280, Height: 720},
			wantErr: true,
		},
		{
			name:    "width too small",
			cfg:     Config{Width: 10, Height: 720},
			wantErr: true,
		},
		{
			name:    "height too small",
			cfg:     Config{Width: 1280, Height: 10},
			wantErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			errs := tc.cfg.Validate()
			if tc.wantErr && len(errs) == 0 {
				t.Error("Expected validation errors, got none")
			}
			if !tc.wantErr && len(errs) > 0 {
				t.Errorf("Expected no validation errors, got %v", errs)
			}
		})
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Width != 1280 || cfg.Height != 720 {
		t.Errorf("DefaultConfig: got %dx%d, want 1280x720", cfg.Width, cfg.Height)
	}
	if cfg.DeviceID != 0 {
		t.Errorf("DefaultConfig: DeviceID should be 0, got %d", cfg.DeviceID)
	}
}
