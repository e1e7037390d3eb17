package csemver

import (
	"testing"
)

func BenchmarkNew(b *testing.B) {
	cfg := Config{Major: 1, Minor: 2, Patch: 3, PreReleaseName: "rc", PreReleaseNumber: 1}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = New(cfg)
	}
}

func BenchmarkNewRelease(b *testing.B) {
	cfg := Config{Major: 1, Minor: 2, Patch: 3}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = New(cfg)
	}
}

func BenchmarkOrderedVersion(b *testing.B) {
	pre, _ := NewPreRelease("rc", 1, 0)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = orderedVersion(1, 2, 3, pre)
	}
}

func BenchmarkDeriveFileVersion(b *testing.B) {
	ordered := orderedVersion(1, 2, 3, releasePreRelease())
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = deriveFileVersion(ordered, true)
	}
}

func BenchmarkRenderLong(b *testing.B) {
	v := MustNew(Config{
		Major: 1, Minor: 2, Patch: 3,
		PreReleaseName: "rc", PreReleaseNumber: 1,
		CIBuildName: "bld", CIBuildIndex: "42",
		BuildMetadata: "sha-1a2b3c",
	})
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = v.String()
	}
}

func BenchmarkRenderShort(b *testing.B) {
	v := MustNew(Config{
		Major: 1, Minor: 2, Patch: 3,
		PreReleaseName: "rc", PreReleaseNumber: 1,
	})
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = v.Short()
	}
}

func BenchmarkCompare(b *testing.B) {
	v1 := MustNew(Config{Major: 1, Minor: 2, Patch: 3})
	v2 := MustNew(Config{Major: 1, Minor: 2, Patch: 3, PreReleaseName: "rc", PreReleaseNumber: 1})
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = v1.Compare(v2)
	}
}
