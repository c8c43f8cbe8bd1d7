package utils

import "testing"

func TestSeedHistoryOnCreateDefaultsOn(t *testing.T) {
	boolPtr := func(b bool) *bool { return &b }

	tests := []struct {
		name  string
		value *bool
		want  string
	}{
		{name: "key absent", value: nil, want: "true"},
		{name: "explicit true", value: boolPtr(true), want: "true"},
		{name: "explicit false", value: boolPtr(false), want: "false"},
	}

	saved := config
	defer func() { config = saved }()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config = Config{SeedHistoryOnCreate: tt.value}
			if got := GetConfig("SEED_HISTORY_ON_CREATE"); got != tt.want {
				t.Errorf("GetConfig(SEED_HISTORY_ON_CREATE) = %q, want %q", got, tt.want)
			}
		})
	}
}
