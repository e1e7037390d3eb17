package csemver

import "testing"

func TestRender(t *testing.T) {
	tests := []struct {
		name      string
		cfg       Config
		wantLong  string
		wantShort string
	}{
		{
			name:      "plain release",
			cfg:       Config{Major: 1, Minor: 2, Patch: 3},
			wantLong:  "1.2.3",
			wantShort: "1.2.3",
		},
		{
			name:      "rc.1",
			cfg:       Config{Major: 1, Minor: 2, Patch: 3, PreReleaseName: "rc", PreReleaseNumber: 1},
			wantLong:  "1.2.3-rc.1",
			wantShort: "1.2.3-r-01",
		},
		{
			name:      "fix suppressed when number is zero",
			cfg:       Config{Major: 1, Minor: 2, Patch: 3, PreReleaseName: "rc", PreReleaseFix: 5},
			wantLong:  "1.2.3-rc",
			wantShort: "1.2.3-r",
		},
		{
			name:      "ci suffix with double dash on release",
			cfg:       Config{Major: 1, Minor: 2, Patch: 3, CIBuildName: "BLD", CIBuildIndex: "abc123"},
			wantLong:  "1.2.3--ci.abc123.BLD",
			wantShort: "1.2.3--ci.abc123.BLD",
		},
		{
			name: "ci suffix with dot after pre-release",
			cfg: Config{
				Major: 1, Minor: 2, Patch: 3,
				PreReleaseName: "rc", PreReleaseNumber: 1,
				CIBuildName: "bld", CIBuildIndex: "42",
			},
			wantLong:  "1.2.3-rc.1.ci.42.bld",
			wantShort: "1.2.3-r-01.ci.42.bld",
		},
		{
			name:      "metadata in long form only",
			cfg:       Config{Major: 1, Minor: 2, Patch: 3, BuildMetadata: "sha-1a2b3c"},
			wantLong:  "1.2.3+sha-1a2b3c",
			wantShort: "1.2.3",
		},
		{
			name: "pre-release ci and metadata together",
			cfg: Config{
				Major: 0, Minor: 4, Patch: 1,
				PreReleaseName: "beta", PreReleaseNumber: 2, PreReleaseFix: 1,
				CIBuildName: "dev", CIBuildIndex: "105",
				BuildMetadata: "1a2b3c",
			},
			wantLong:  "0.4.1-beta.2.1.ci.105.dev+1a2b3c",
			wantShort: "0.4.1-b-02-01.ci.105.dev",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := MustNew(tt.cfg)
			if got := v.String(); got != tt.wantLong {
				t.Errorf("String() = %q, want %q", got, tt.wantLong)
			}
			if got := v.Short(); got != tt.wantShort {
				t.Errorf("Short() = %q, want %q", got, tt.wantShort)
			}
		})
	}
}

func TestRenderMetadataToggle(t *testing.T) {
	v := MustNew(Config{Major: 1, Minor: 0, Patch: 0, BuildMetadata: "abc"})

	if got := v.Render(true, false); got != "1.0.0+abc" {
		t.Errorf("Render(true, false) = %q, want 1.0.0+abc", got)
	}
	if got := v.Render(false, false); got != "1.0.0" {
		t.Errorf("Render(false, false) = %q, want 1.0.0", got)
	}
	if got := v.Render(true, true); got != "1.0.0+abc" {
		t.Errorf("Render(true, true) = %q, want 1.0.0+abc", got)
	}
}
