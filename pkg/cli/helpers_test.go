// Copyright (c) 2026, The CSemVer Go Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/urfave/cli/v3"

	"github.com/csemver/csemver/pkg/csemver"
	"github.com/csemver/csemver/pkg/serializer"
)

func TestParseOutputFormat(t *testing.T) {
	tests := []struct {
		name       string
		format     string
		wantFormat serializer.Format
		wantErr    bool
	}{
		{
			name:       "valid yaml format",
			format:     "yaml",
			wantFormat: serializer.FormatYAML,
			wantErr:    false,
		},
		{
			name:       "valid json format",
			format:     "json",
			wantFormat: serializer.FormatJSON,
			wantErr:    false,
		},
		{
			name:       "valid table format",
			format:     "table",
			wantFormat: serializer.FormatTable,
			wantErr:    false,
		},
		{
			name:       "invalid format xml",
			format:     "xml",
			wantFormat: "",
			wantErr:    true,
		},
		{
			name:       "empty format",
			format:     "",
			wantFormat: "",
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := &cli.Command{
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "format",
						Value: tt.format,
					},
				},
				Action: func(_ context.Context, c *cli.Command) error {
					got, err := parseOutputFormat(c)
					if (err != nil) != tt.wantErr {
						t.Errorf("parseOutputFormat() error = %v, wantErr %v", err, tt.wantErr)
						return nil
					}
					if !tt.wantErr && got != tt.wantFormat {
						t.Errorf("parseOutputFormat() = %v, want %v", got, tt.wantFormat)
					}
					return nil
				},
			}

			if err := cmd.Run(context.Background(), []string{"test"}); err != nil {
				t.Fatalf("failed to run command: %v", err)
			}
		})
	}
}

func writeDescriptorFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".csemver.yaml")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write descriptor: %v", err)
	}
	return path
}

func TestBuildConfigFromCmd(t *testing.T) {
	descPath := writeDescriptorFile(t, `
buildMajor: 2
buildMinor: 1
buildPatch: 5
preReleaseName: beta
preReleaseNumber: 3
`)

	tests := []struct {
		name    string
		args    []string
		want    csemver.Config
		wantErr bool
	}{
		{
			name: "flags only",
			args: []string{"test", "--major", "1", "--minor", "2", "--patch", "3", "--pre", "rc"},
			want: csemver.Config{Major: 1, Minor: 2, Patch: 3, PreReleaseName: "rc"},
		},
		{
			name: "descriptor only",
			args: []string{"test", "--descriptor", descPath},
			want: csemver.Config{Major: 2, Minor: 1, Patch: 5, PreReleaseName: "beta", PreReleaseNumber: 3},
		},
		{
			name: "flags override descriptor",
			args: []string{"test", "--descriptor", descPath, "--patch", "6", "--pre-number", "4"},
			want: csemver.Config{Major: 2, Minor: 1, Patch: 6, PreReleaseName: "beta", PreReleaseNumber: 4},
		},
		{
			name:    "missing descriptor file",
			args:    []string{"test", "--descriptor", filepath.Join(t.TempDir(), "nope.yaml")},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got csemver.Config
			var gotErr error

			cmd := &cli.Command{
				Name:  "test",
				Flags: versionFlags(),
				Action: func(_ context.Context, c *cli.Command) error {
					got, gotErr = buildConfigFromCmd(c)
					return nil
				},
			}

			if err := cmd.Run(context.Background(), tt.args); err != nil {
				t.Fatalf("failed to run command: %v", err)
			}

			if (gotErr != nil) != tt.wantErr {
				t.Fatalf("buildConfigFromCmd() error = %v, wantErr %v", gotErr, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("buildConfigFromCmd() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
