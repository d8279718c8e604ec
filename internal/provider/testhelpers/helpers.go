// Copyright (c) DevOps Wiz
// SPDX-License-Identifier: MPL-2.0

package testhelpers

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"text/template"
)

// TemplatePath returns a path to a template file under TmplPath.
func TemplatePath(name string) string {
	return filepath.Join(TmplPath, name)
}

// MustReadTemplate reads a template by name or fails the test.
func MustReadTemplate(t *testing.T, name string) string {
	t.Helper()
	p := TemplatePath(name)
	absPath, _ := filepath.Abs(p)
	b, err := os.ReadFile(p)
	if err != nil {
		wd, _ := os.Getwd()
		dir := filepath.Dir(p)
		var candidates []string
		if entries, dirErr := os.ReadDir(dir); dirErr == nil {
			for _, e := range entries {
				if !e.IsDir() {
					candidates = append(candidates, e.Name())
				}
			}
		}
		t.Fatalf(
			"failed to read template %q\n  path: %s\n  abs:  %s\n  cwd:  %s\n  dir:  %s\n  available templates: %v\n  error: %v",
			name, p, absPath, wd, dir, candidates, err,
		)
	}
	return string(b)
}

// MustRender parses the named template and executes it with data, failing the test on error.
func MustRender(t *testing.T, name string, data any) string {
	t.Helper()
	tmpl, err := template.New(name).Parse(MustReadTemplate(t, name))
	if err != nil {
		t.Fatal(err)
	}
	var out bytes.Buffer
	if err := tmpl.Execute(&out, data); err != nil {
		t.Fatal(err)
	}
	return out.String()
}

// MustCopy copies from r to a temp file and returns its path.
func MustCopy(t *testing.T, name string, r io.Reader) string {
	t.Helper()
	tmp := t.TempDir()
	dst := filepath.Join(tmp, name)
	f, err := os.Create(dst)
	if err != nil {
		t.Fatalf("create temp file: %v", err)
	}
	if _, err := io.Copy(f, r); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	err = f.Close()
	if err != nil {
		t.Fatalf("close temp file: %v", err)
	}
	return dst
}

// ProviderConfig renders a provider "pipeline" block.
func ProviderConfig(t *testing.T, cfg ProviderTmplCfg) string {
	t.Helper()
	return MustRender(t, ProviderTmpl, cfg)
}

// TestAccConfigurationDataSource renders a provider block plus a pipeline_configuration
// data source named dataName and optional pipeline_fingerprint data sources.
func TestAccConfigurationDataSource(t *testing.T, cfg ProviderTmplCfg, dataName string, fingerprintProjects ...string) string {
	t.Helper()
	return MustRender(t, DataConfigurationTmpl, DataConfigurationCfg{
		ProviderBlock:       ProviderConfig(t, cfg),
		DataName:            dataName,
		FingerprintProjects: fingerprintProjects,
	})
}

// ContainsAny reports whether s contains any of the needles.
func ContainsAny(s string, needles ...string) bool {
	for _, n := range needles {
		if n != "" && strings.Contains(s, n) {
			return true
		}
	}
	return false
}
