/*
Copyright (c) 2026, The CSemVer Go Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/csemver/csemver/pkg/csemver"
	"github.com/csemver/csemver/pkg/descriptor"
	"github.com/csemver/csemver/pkg/serializer"
)

// versionFlags are the version component inputs shared by the compute
// and properties commands.
func versionFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "descriptor",
			Aliases: []string{"f"},
			Usage: fmt.Sprintf("Path to a version descriptor file (e.g. %s); explicit flags override its values",
				descriptor.DefaultPath),
		},
		&cli.IntFlag{
			Name:  "major",
			Usage: fmt.Sprintf("Major version component [0..%d]", csemver.MaxMajor),
		},
		&cli.IntFlag{
			Name:  "minor",
			Usage: fmt.Sprintf("Minor version component [0..%d]", csemver.MaxMinor),
		},
		&cli.IntFlag{
			Name:  "patch",
			Usage: fmt.Sprintf("Patch version component [0..%d]", csemver.MaxPatch),
		},
		&cli.StringFlag{
			Name: "pre",
			Usage: fmt.Sprintf("Pre-release name, long or 1-letter form (supported values: %s)",
				csemver.PreReleaseNames()),
		},
		&cli.IntFlag{
			Name:  "pre-number",
			Usage: "Pre-release number [0..99]",
		},
		&cli.IntFlag{
			Name:  "pre-fix",
			Usage: "Pre-release fix [0..99]",
		},
		&cli.StringFlag{
			Name:  "meta",
			Usage: "Build metadata (e.g. short commit sha, max 20 characters)",
		},
		&cli.StringFlag{
			Name:  "ci-name",
			Usage: "CI build name (requires --ci-index)",
		},
		&cli.StringFlag{
			Name:  "ci-index",
			Usage: "CI build index (requires --ci-name)",
		},
	}
}

// buildConfigFromCmd assembles a version config from the descriptor file
// (when given) and the command flags. Flags set on the command line take
// precedence over descriptor values.
func buildConfigFromCmd(cmd *cli.Command) (csemver.Config, error) {
	var cfg csemver.Config

	if path := cmd.String("descriptor"); path != "" {
		d, err := descriptor.Load(path)
		if err != nil {
			return cfg, fmt.Errorf("failed to load descriptor: %w", err)
		}
		cfg = d.Config()
	}

	if cmd.IsSet("major") {
		cfg.Major = cmd.Int("major")
	}
	if cmd.IsSet("minor") {
		cfg.Minor = cmd.Int("minor")
	}
	if cmd.IsSet("patch") {
		cfg.Patch = cmd.Int("patch")
	}
	if cmd.IsSet("pre") {
		cfg.PreReleaseName = cmd.String("pre")
	}
	if cmd.IsSet("pre-number") {
		cfg.PreReleaseNumber = cmd.Int("pre-number")
	}
	if cmd.IsSet("pre-fix") {
		cfg.PreReleaseFix = cmd.Int("pre-fix")
	}
	if cmd.IsSet("meta") {
		cfg.BuildMetadata = cmd.String("meta")
	}
	if cmd.IsSet("ci-name") {
		cfg.CIBuildName = cmd.String("ci-name")
	}
	if cmd.IsSet("ci-index") {
		cfg.CIBuildIndex = cmd.String("ci-index")
	}

	return cfg, nil
}

func computeCmd() *cli.Command {
	return &cli.Command{
		Name:                  "compute",
		EnableShellCompletion: true,
		Usage:                 "Compute a version from its components",
		Description: `Validate version components, derive the ordered version number and the
legacy four-part file version, and write the result in JSON, YAML, or
table format. Components come from flags, a descriptor file, or both.`,
		Flags: append(versionFlags(),
			outputFlag,
			formatFlag,
		),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			cfg, err := buildConfigFromCmd(cmd)
			if err != nil {
				return err
			}

			v, err := csemver.New(cfg)
			if err != nil {
				return fmt.Errorf("error computing version: %w", err)
			}

			slog.Debug("computed version",
				"version", v.String(),
				"ordered", v.Ordered,
				"file", v.File.String(),
			)

			ser := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			defer func() {
				if err := ser.Close(); err != nil {
					slog.Warn("failed to close serializer", "error", err)
				}
			}()

			return ser.Serialize(ctx, v)
		},
	}
}
