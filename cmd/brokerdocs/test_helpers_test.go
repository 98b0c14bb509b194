package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"brokerdocs/internal/config"
	"brokerdocs/internal/testsupport"
)

const (
	securityPage = "WERTPAPIERABRECHNUNG KAUF\nDATUM 05.03.2023\nISIN: US0378331005"
	cryptoPage   = "ABRECHNUNG CRYPTOGESCHÄFT\nDATUM 07.01.2024\nBitcoin (BTC) 0,01 Stk."
	dividendPage = "AUSSCHÜTTUNG\nDATUM 15.02.2023\nISIN: IE00B4L5Y983"
)

type cliTestEnv struct {
	cfg        *config.Config
	configPath string
}

func setupCLITestEnv(t *testing.T, opts ...testsupport.ConfigOption) *cliTestEnv {
	t.Helper()

	cfg := testsupport.NewConfig(t, opts...)
	home := filepath.Join(testsupport.BaseDir(cfg), "home")
	if err := os.MkdirAll(home, 0o755); err != nil {
		t.Fatalf("mkdir home: %v", err)
	}
	t.Setenv("HOME", home)
	for _, key := range []string{"BROKER", "LANGUAGE", "BROKERDOCS_BROKER", "BROKERDOCS_LANGUAGE"} {
		t.Setenv(key, "")
	}
	t.Chdir(testsupport.BaseDir(cfg))

	return &cliTestEnv{cfg: cfg, configPath: testsupport.WriteConfigFile(t, cfg)}
}

func (e *cliTestEnv) writeSources(t *testing.T, pages map[string]string) {
	t.Helper()
	for name, page := range pages {
		testsupport.WritePDF(t, filepath.Join(e.cfg.Paths.SourceDir, name), page)
	}
}

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	var flags []string
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}
