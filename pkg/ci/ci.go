// Copyright (c) 2026, The CSemVer Go Authors.  All rights reserved.
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

package ci

import (
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"
)

// Kind identifies a recognized CI provider.
type Kind string

const (
	// KindNone indicates no recognized CI environment.
	KindNone Kind = "none"
	// KindGitHub indicates GitHub Actions.
	KindGitHub Kind = "github"
	// KindGitLab indicates GitLab CI.
	KindGitLab Kind = "gitlab"
	// KindAzure indicates Azure Pipelines.
	KindAzure Kind = "azure"
	// KindJenkins indicates Jenkins.
	KindJenkins Kind = "jenkins"
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	return string(k)
}

// SupportedKinds returns the recognized CI kinds in detection order.
func SupportedKinds() []string {
	return []string{
		string(KindGitHub),
		string(KindGitLab),
		string(KindAzure),
		string(KindJenkins),
	}
}

// Build is the detected CI build identity. Name and Index are either both
// set and already sanitized to the constrained alphabet, or both empty when
// Kind is KindNone.
type Build struct {
	Kind  Kind   `json:"kind" yaml:"kind"`
	Name  string `json:"name,omitempty" yaml:"name,omitempty"`
	Index string `json:"index,omitempty" yaml:"index,omitempty"`
}

// IsCI reports whether a CI environment was recognized.
func (b Build) IsCI() bool {
	return b.Kind != KindNone && b.Kind != ""
}

// Detect classifies the current process environment.
func Detect() Build {
	return DetectEnv(os.Getenv)
}

// DetectEnv classifies a CI environment through the given lookup function.
// Providers are probed in a fixed order and the first match wins. When a
// provider exposes no usable build counter, a short unique token is
// generated so the name/index pair stays complete.
func DetectEnv(getenv func(string) string) Build {
	switch {
	case getenv("GITHUB_ACTIONS") == "true":
		return newBuild(KindGitHub, getenv("GITHUB_REF_NAME"), getenv("GITHUB_RUN_NUMBER"))
	case getenv("GITLAB_CI") == "true":
		return newBuild(KindGitLab, getenv("CI_COMMIT_REF_NAME"), getenv("CI_PIPELINE_IID"))
	case strings.EqualFold(getenv("TF_BUILD"), "true"):
		return newBuild(KindAzure, getenv("BUILD_SOURCEBRANCHNAME"), getenv("BUILD_BUILDID"))
	case getenv("JENKINS_URL") != "":
		name := getenv("BRANCH_NAME")
		if name == "" {
			name = getenv("GIT_BRANCH")
		}
		return newBuild(KindJenkins, name, getenv("BUILD_NUMBER"))
	default:
		return Build{Kind: KindNone}
	}
}

func newBuild(kind Kind, name, index string) Build {
	b := Build{
		Kind:  kind,
		Name:  Sanitize(name),
		Index: Sanitize(index),
	}
	if b.Name == "" {
		b.Name = string(kind)
	}
	if b.Index == "" {
		b.Index = fallbackIndex()
		slog.Debug("ci provider exposed no build counter, generated fallback index",
			"kind", kind, "index", b.Index)
	}
	return b
}

// fallbackIndex returns a short unique token from the constrained alphabet.
func fallbackIndex() string {
	return strings.SplitN(uuid.NewString(), "-", 2)[0]
}

// Sanitize lowercases s and collapses every run of characters outside
// [a-z0-9] into a single dash, trimming dashes at both ends. The result is
// valid input for the version engine's CI fields, or empty when nothing
// survives.
func Sanitize(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		case b.Len() > 0 && !dash:
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimRight(b.String(), "-")
}
