package selfupdate

import (
	"archive/tar"
	"archive/zip"
	"bytes"
	"compress/gzip"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// releaseFixture serves a fake GitHub release: the latest-release API
// endpoint plus downloadable assets.
type releaseFixture struct {
	tag    string
	assets map[string][]byte
	server *httptest.Server
}

func newReleaseFixture(t *testing.T, tag string) *releaseFixture {
	t.Helper()
	f := &releaseFixture{tag: tag, assets: map[string][]byte{}}
	f.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/repos/futurelink/pathfinder/releases/latest" {
			_, _ = w.Write([]byte(`{"tag_name":"` + f.tag + `","html_url":"https://example.com/` + f.tag + `"}`))
			return
		}
		prefix := "/futurelink/pathfinder/releases/download/" + f.tag + "/"
		if name, ok := strings.CutPrefix(r.URL.Path, prefix); ok {
			if data, exists := f.assets[name]; exists {
				_, _ = w.Write(data)
				return
			}
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	t.Cleanup(f.server.Close)
	return f
}

func (f *releaseFixture) addAsset(name string, data []byte) {
	f.assets[name] = data
}

func (f *releaseFixture) addChecksums(names ...string) {
	var manifest bytes.Buffer
	for _, name := range names {
		sum := sha256.Sum256(f.assets[name])
		manifest.WriteString(hex.EncodeToString(sum[:]) + "  " + name + "\n")
	}
	f.assets["checksums.txt"] = manifest.Bytes()
}

func (f *releaseFixture) checker(opts ...Option) *Checker {
	opts = append([]Option{WithBaseURLs(f.server.URL, f.server.URL)}, opts...)
	return NewChecker(opts...)
}

// archiveFor wraps a pathfinder binary the way releases package it for the
// asset name: zip with pathfinder.exe, tar.gz with pathfinder.
func archiveFor(t *testing.T, asset string, binary []byte) []byte {
	t.Helper()
	if strings.HasSuffix(asset, ".zip") {
		return buildZip(t, "pathfinder.exe", binary)
	}
	return buildTarGz(t, "pathfinder", binary)
}

func buildTarGz(t *testing.T, name string, content []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gw)

	require.NoError(t, tw.WriteHeader(&tar.Header{
		Name: name,
		Size: int64(len(content)),
		Mode: 0755,
	}))
	_, err := tw.Write(content)
	require.NoError(t, err)
	require.NoError(t, tw.Close())
	require.NoError(t, gw.Close())
	return buf.Bytes()
}

func buildZip(t *testing.T, name string, content []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	f, err := zw.Create(name)
	require.NoError(t, err)
	_, err = f.Write(content)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestAssetNameFor(t *testing.T) {
	tests := []struct {
		goos   string
		goarch string
		want   string
	}{
		{"darwin", "amd64", "pathfinder_Darwin_all.tar.gz"},
		{"darwin", "arm64", "pathfinder_Darwin_all.tar.gz"},
		{"linux", "amd64", "pathfinder_Linux_x86_64.tar.gz"},
		{"linux", "arm64", "pathfinder_Linux_arm64.tar.gz"},
		{"linux", "386", "pathfinder_Linux_i386.tar.gz"},
		{"windows", "amd64", "pathfinder_Windows_x86_64.zip"},
		{"windows", "arm64", "pathfinder_Windows_arm64.zip"},
	}
	for _, tt := range tests {
		got, err := assetNameFor(tt.goos, tt.goarch)
		require.NoError(t, err, "%s/%s", tt.goos, tt.goarch)
		assert.Equal(t, tt.want, got)
	}

	for _, bad := range [][2]string{{"freebsd", "amd64"}, {"linux", "mips"}, {"windows", "mips"}} {
		_, err := assetNameFor(bad[0], bad[1])
		assert.Error(t, err, "%s/%s", bad[0], bad[1])
	}
}

func TestParseChecksums(t *testing.T) {
	manifest := strings.Join([]string{
		"abc123  pathfinder_Darwin_all.tar.gz",
		"not-a-checksum-line",
		"",
		"one two three",
		"def456  pathfinder_Linux_x86_64.tar.gz",
	}, "\n")

	got := parseChecksums([]byte(manifest))
	assert.Equal(t, map[string]string{
		"pathfinder_Darwin_all.tar.gz":   "abc123",
		"pathfinder_Linux_x86_64.tar.gz": "def456",
	}, got)

	assert.Empty(t, parseChecksums(nil))
}

func TestVerifyChecksum(t *testing.T) {
	data := []byte("pathfinder release bytes")
	sum := sha256.Sum256(data)

	assert.NoError(t, verifyChecksum(data, hex.EncodeToString(sum[:])))

	err := verifyChecksum(data, strings.Repeat("0", 64))
	assert.ErrorIs(t, err, ErrChecksum)
}

func TestExtractBinary(t *testing.T) {
	binary := []byte("#!/bin/sh\necho pathfinder")

	t.Run("tar.gz asset", func(t *testing.T) {
		got, err := extractBinary(buildTarGz(t, "pathfinder", binary), "pathfinder_Linux_x86_64.tar.gz")
		require.NoError(t, err)
		assert.Equal(t, binary, got)
	})

	t.Run("zip asset", func(t *testing.T) {
		got, err := extractBinary(buildZip(t, "pathfinder.exe", binary), "pathfinder_Windows_x86_64.zip")
		require.NoError(t, err)
		assert.Equal(t, binary, got)
	})

	t.Run("binary missing from archive", func(t *testing.T) {
		_, err := extractBinary(buildTarGz(t, "README.md", binary), "pathfinder_Linux_x86_64.tar.gz")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})
}

func TestApplyUpdate(t *testing.T) {
	target := filepath.Join(t.TempDir(), "pathfinder")
	require.NoError(t, os.WriteFile(target, []byte("old build"), 0755))

	replacement := []byte("new build")
	sum := sha256.Sum256(replacement)
	require.NoError(t, applyUpdate(replacement, target, sum[:]))

	got, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, replacement, got)

	info, err := os.Stat(target)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0755), info.Mode().Perm(), "mode of the old binary survives the swap")
}

func TestUpdate_ReplacesBinary(t *testing.T) {
	asset, err := assetName()
	require.NoError(t, err)

	binary := []byte("pathfinder v2 build")
	fixture := newReleaseFixture(t, "v2.0.0")
	fixture.addAsset(asset, archiveFor(t, asset, binary))
	fixture.addChecksums(asset)

	execPath := filepath.Join(t.TempDir(), "pathfinder")
	require.NoError(t, os.WriteFile(execPath, []byte("pathfinder v1 build"), 0755))

	checker := fixture.checker(WithExecPath(func() (string, error) { return execPath, nil }))

	var stages []string
	err = checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(p UpdateProgress) {
		stages = append(stages, p.Stage)
	})
	require.NoError(t, err)

	got, err := os.ReadFile(execPath)
	require.NoError(t, err)
	assert.Equal(t, binary, got)
	assert.Equal(t, []string{"check", "download", "verify", "extract", "apply", "done"}, stages)
}

func TestUpdate_RefusesDevBuild(t *testing.T) {
	err := NewChecker().Update(context.Background(), &UpdateInput{CurrentVersion: "(devel)"}, func(UpdateProgress) {})
	assert.ErrorIs(t, err, ErrDevBuild)
}

func TestUpdate_AlreadyLatest(t *testing.T) {
	fixture := newReleaseFixture(t, "v1.0.0")
	err := fixture.checker().Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(UpdateProgress) {})
	assert.ErrorIs(t, err, ErrAlreadyLatest)
}

func TestUpdate_ChecksumMismatch(t *testing.T) {
	asset, err := assetName()
	require.NoError(t, err)

	fixture := newReleaseFixture(t, "v2.0.0")
	fixture.addAsset(asset, archiveFor(t, asset, []byte("tampered build")))
	fixture.assets["checksums.txt"] = []byte(strings.Repeat("0", 64) + "  " + asset + "\n")

	err = fixture.checker().Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(UpdateProgress) {})
	assert.ErrorIs(t, err, ErrChecksum)
}

func TestUpdate_MissingAsset(t *testing.T) {
	fixture := newReleaseFixture(t, "v2.0.0")

	err := fixture.checker().Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(UpdateProgress) {})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "download archive")
}
