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
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/csemver/csemver/pkg/ci"
	"github.com/csemver/csemver/pkg/csemver"
	"github.com/csemver/csemver/pkg/emitter"
)

func propertiesCmd() *cli.Command {
	return &cli.Command{
		Name:                  "properties",
		EnableShellCompletion: true,
		Usage:                 "Emit build property files for a version",
		Description: `Compute a version and write its property set (product, informational,
package, file, and assembly versions) as build property files. Supports
dotenv for shells, MSBuild props for .NET projects, and JSON.`,
		Flags: append(versionFlags(),
			&cli.StringFlag{
				Name:    "dir",
				Aliases: []string{"d"},
				Value:   ".",
				Usage:   "Directory to write property files into",
			},
			&cli.StringSliceFlag{
				Name: "props-format",
				Usage: fmt.Sprintf("Property file format, repeatable (supported values: %s; default: all)",
					strings.Join(emitter.SupportedFormats(), ", ")),
			},
			&cli.StringFlag{
				Name:  "stem",
				Value: "csemver",
				Usage: "File name stem for the emitted property files",
			},
			&cli.StringFlag{
				Name:  "prefix",
				Value: "CSEMVER_",
				Usage: "Key prefix for dotenv output",
			},
			&cli.BoolFlag{
				Name: "detect-ci",
				Usage: fmt.Sprintf("Fill the CI build pair from the environment when not set explicitly (supported providers: %s)",
					ci.SupportedKinds()),
			},
		),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := buildConfigFromCmd(cmd)
			if err != nil {
				return err
			}

			if cmd.Bool("detect-ci") && cfg.CIBuildName == "" && cfg.CIBuildIndex == "" {
				if build := ci.Detect(); build.IsCI() {
					cfg.CIBuildName = build.Name
					cfg.CIBuildIndex = build.Index
					slog.Debug("detected ci environment",
						"kind", build.Kind,
						"name", build.Name,
						"index", build.Index,
					)
				}
			}

			var formats []emitter.Format
			for _, s := range cmd.StringSlice("props-format") {
				f, err := emitter.ParseFormat(s)
				if err != nil {
					return err
				}
				formats = append(formats, f)
			}

			v, err := csemver.New(cfg)
			if err != nil {
				return fmt.Errorf("error computing version: %w", err)
			}

			e := emitter.New(
				emitter.WithFormats(formats...),
				emitter.WithFileStem(cmd.String("stem")),
				emitter.WithPrefix(cmd.String("prefix")),
			)

			out, err := e.Emit(ctx, emitter.FromVersion(v), cmd.String("dir"))
			if err != nil {
				return fmt.Errorf("error emitting property files: %w", err)
			}

			for _, path := range out.Files {
				fmt.Fprintln(cmd.Writer, path)
			}
			return nil
		},
	}
}
