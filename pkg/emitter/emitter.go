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

package emitter

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/csemver/csemver/pkg/csemver"
	"github.com/csemver/csemver/pkg/errors"
	"github.com/csemver/csemver/pkg/serializer"
	"golang.org/x/sync/errgroup"
)

// Format identifies a property file format.
type Format string

const (
	// FormatDotenv emits KEY=value pairs, one per line.
	FormatDotenv Format = "dotenv"

	// FormatProps emits an MSBuild property group.
	FormatProps Format = "props"

	// FormatJSON emits a single JSON object.
	FormatJSON Format = "json"

	defaultFileStem = "csemver"
	defaultPrefix   = "CSEMVER_"
)

// SupportedFormats returns the formats Emit can render.
func SupportedFormats() []string {
	return []string{string(FormatDotenv), string(FormatProps), string(FormatJSON)}
}

// ParseFormat maps a user-supplied format name to a Format.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatDotenv:
		return FormatDotenv, nil
	case FormatProps:
		return FormatProps, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return "", errors.Newf(errors.ErrCodePattern,
			"unknown property format %q (supported: %s)", s, strings.Join(SupportedFormats(), ", "))
	}
}

// Properties is the flat set of version strings a build pipeline consumes.
// Every field derives from a single computed version.
type Properties struct {
	// ProductVersion is the full rendering without build metadata.
	ProductVersion string `json:"productVersion" yaml:"productVersion"`

	// InformationalVersion is the full rendering including build metadata.
	InformationalVersion string `json:"informationalVersion" yaml:"informationalVersion"`

	// PackageVersion is the short-form rendering used for package feeds.
	PackageVersion string `json:"packageVersion" yaml:"packageVersion"`

	// FileVersion is the legacy four-part dotted quadruple.
	FileVersion string `json:"fileVersion" yaml:"fileVersion"`

	// AssemblyVersion pins the first two components only, so patch and
	// pre-release churn does not break binary binding.
	AssemblyVersion string `json:"assemblyVersion" yaml:"assemblyVersion"`

	OrderedVersion uint64 `json:"orderedVersion" yaml:"orderedVersion"`

	Major int `json:"major" yaml:"major"`
	Minor int `json:"minor" yaml:"minor"`
	Patch int `json:"patch" yaml:"patch"`

	CIBuild      bool   `json:"ciBuild" yaml:"ciBuild"`
	CIBuildName  string `json:"ciBuildName,omitempty" yaml:"ciBuildName,omitempty"`
	CIBuildIndex string `json:"ciBuildIndex,omitempty" yaml:"ciBuildIndex,omitempty"`
}

// FromVersion expands a computed version into its property set.
func FromVersion(v csemver.Version) Properties {
	return Properties{
		ProductVersion:       v.Render(false, false),
		InformationalVersion: v.Render(true, false),
		PackageVersion:       v.Render(false, true),
		FileVersion:          v.File.String(),
		AssemblyVersion:      fmt.Sprintf("%d.%d.0.0", v.Major, v.Minor),
		OrderedVersion:       v.Ordered,
		Major:                v.Major,
		Minor:                v.Minor,
		Patch:                v.Patch,
		CIBuild:              v.IsCIBuild(),
		CIBuildName:          v.CIBuildName,
		CIBuildIndex:         v.CIBuildIndex,
	}
}

// Emitter writes property files for a version.
type Emitter struct {
	// Formats selects which files to write. Empty means all supported formats.
	Formats []Format

	// Prefix is prepended to every dotenv key. Defaults to "CSEMVER_".
	Prefix string

	// FileStem names the output files (stem + format extension).
	// Defaults to "csemver".
	FileStem string
}

// Option configures an Emitter.
type Option func(*Emitter)

// WithFormats restricts emission to the given formats.
func WithFormats(formats ...Format) Option {
	return func(e *Emitter) {
		e.Formats = formats
	}
}

// WithPrefix overrides the dotenv key prefix.
func WithPrefix(prefix string) Option {
	return func(e *Emitter) {
		e.Prefix = prefix
	}
}

// WithFileStem overrides the output file stem.
func WithFileStem(stem string) Option {
	return func(e *Emitter) {
		e.FileStem = stem
	}
}

// New creates an Emitter with the given options.
func New(opts ...Option) *Emitter {
	e := &Emitter{
		Prefix:   defaultPrefix,
		FileStem: defaultFileStem,
	}
	for _, opt := range opts {
		opt(e)
	}
	if len(e.Formats) == 0 {
		e.Formats = []Format{FormatDotenv, FormatProps, FormatJSON}
	}
	return e
}

// Output summarizes an Emit call.
type Output struct {
	// Files lists the paths written, in format order.
	Files []string `json:"files" yaml:"files"`

	// Duration is the total wall time of the emit.
	Duration time.Duration `json:"duration" yaml:"duration"`
}

// Emit renders props into every configured format and writes the files
// under dir, one goroutine per file. The first failure cancels the rest.
func (e *Emitter) Emit(ctx context.Context, props Properties, dir string) (*Output, error) {
	start := time.Now()

	if dir == "" {
		dir = "."
	}

	paths := make([]string, len(e.Formats))
	g, gctx := errgroup.WithContext(ctx)

	for i, format := range e.Formats {
		path := filepath.Join(dir, e.FileStem+extensionFor(format))
		paths[i] = path
		format := format

		g.Go(func() error {
			data, err := e.render(gctx, format, props)
			if err != nil {
				return err
			}
			if err := serializer.WriteToFile(path, data); err != nil {
				return errors.Wrap(errors.ErrCodeInternal,
					fmt.Sprintf("failed to write %s properties to %s", format, path), err)
			}
			slog.Debug("wrote property file", "format", format, "path", path, "bytes", len(data))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	slog.Info("property files written",
		"count", len(paths),
		"dir", dir,
		"duration", time.Since(start),
	)

	return &Output{
		Files:    paths,
		Duration: time.Since(start),
	}, nil
}

// Render produces the serialized form of props in a single format,
// without touching the filesystem.
func (e *Emitter) Render(ctx context.Context, format Format, props Properties) ([]byte, error) {
	return e.render(ctx, format, props)
}

func (e *Emitter) render(ctx context.Context, format Format, props Properties) ([]byte, error) {
	switch format {
	case FormatDotenv:
		return e.renderDotenv(props), nil
	case FormatProps:
		return renderProps(props), nil
	case FormatJSON:
		return renderJSON(ctx, props)
	default:
		return nil, errors.Newf(errors.ErrCodePattern, "unknown property format %q", format)
	}
}

func extensionFor(format Format) string {
	switch format {
	case FormatDotenv:
		return ".env"
	case FormatProps:
		return ".props"
	default:
		return ".json"
	}
}

func (e *Emitter) renderDotenv(props Properties) []byte {
	pairs := map[string]string{
		"PRODUCT_VERSION":       props.ProductVersion,
		"INFORMATIONAL_VERSION": props.InformationalVersion,
		"PACKAGE_VERSION":       props.PackageVersion,
		"FILE_VERSION":          props.FileVersion,
		"ASSEMBLY_VERSION":      props.AssemblyVersion,
		"ORDERED_VERSION":       fmt.Sprintf("%d", props.OrderedVersion),
		"MAJOR":                 fmt.Sprintf("%d", props.Major),
		"MINOR":                 fmt.Sprintf("%d", props.Minor),
		"PATCH":                 fmt.Sprintf("%d", props.Patch),
		"CI_BUILD":              fmt.Sprintf("%t", props.CIBuild),
	}
	if props.CIBuild {
		pairs["CI_BUILD_NAME"] = props.CIBuildName
		pairs["CI_BUILD_INDEX"] = props.CIBuildIndex
	}

	keys := make([]string, 0, len(pairs))
	for k := range pairs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b bytes.Buffer
	for _, k := range keys {
		fmt.Fprintf(&b, "%s%s=%s\n", e.Prefix, k, pairs[k])
	}
	return b.Bytes()
}

func renderProps(props Properties) []byte {
	var b bytes.Buffer
	b.WriteString("<Project>\n  <PropertyGroup>\n")
	writeProp(&b, "Version", props.ProductVersion)
	writeProp(&b, "InformationalVersion", props.InformationalVersion)
	writeProp(&b, "PackageVersion", props.PackageVersion)
	writeProp(&b, "FileVersion", props.FileVersion)
	writeProp(&b, "AssemblyVersion", props.AssemblyVersion)
	writeProp(&b, "OrderedVersion", fmt.Sprintf("%d", props.OrderedVersion))
	b.WriteString("  </PropertyGroup>\n</Project>\n")
	return b.Bytes()
}

func writeProp(b *bytes.Buffer, name, value string) {
	fmt.Fprintf(b, "    <%s>%s</%s>\n", name, value, name)
}

func renderJSON(ctx context.Context, props Properties) ([]byte, error) {
	var b bytes.Buffer
	w := serializer.NewWriter(serializer.FormatJSON, &b)
	if err := w.Serialize(ctx, props); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}
