package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/chaosgame/pkg/buildinfo"
	"github.com/matzehuels/chaosgame/pkg/errors"
)

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf, LogInfo)

	if c.Logger == nil || c.Out == nil {
		t.Fatal("New() should set Logger and Out")
	}
	if c.spinner {
		t.Error("spinner should be disabled for non-terminal writers")
	}

	c.SetLogLevel(LogDebug)
	if c.Logger.GetLevel() != log.DebugLevel {
		t.Errorf("level = %v, want debug", c.Logger.GetLevel())
	}
}

func TestRootCommandStructure(t *testing.T) {
	root := New(&bytes.Buffer{}, LogInfo).RootCommand()

	if root.Use != appName {
		t.Errorf("Use = %q, want %q", root.Use, appName)
	}
	for _, name := range []string{"render", "completion"} {
		if cmd, _, err := root.Find([]string{name}); err != nil || cmd.Name() != name {
			t.Errorf("subcommand %q not registered", name)
		}
	}
	for _, flag := range []string{"config", "edges", "iterations", "radius", "width", "height", "margin", "output", "seed"} {
		if root.Flags().Lookup(flag) == nil {
			t.Errorf("root flag --%s missing", flag)
		}
	}
}

func TestVersionFlag(t *testing.T) {
	root := New(&bytes.Buffer{}, LogInfo).RootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"--version"})

	if err := root.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("execute: %v", err)
	}
	want := "chaosgame version " + buildinfo.Version
	if !strings.Contains(out.String(), want) {
		t.Errorf("version output = %q, want %q", out.String(), want)
	}
}

func TestCompletion(t *testing.T) {
	for _, shell := range []string{"bash", "zsh", "fish", "powershell"} {
		t.Run(shell, func(t *testing.T) {
			root := New(&bytes.Buffer{}, LogInfo).RootCommand()
			var out bytes.Buffer
			root.SetOut(&out)
			root.SetArgs([]string{"completion", shell})

			if err := root.ExecuteContext(context.Background()); err != nil {
				t.Fatalf("execute: %v", err)
			}
			if !strings.Contains(out.String(), appName) {
				t.Errorf("%s completion should mention %s", shell, appName)
			}
		})
	}

	root := New(&bytes.Buffer{}, LogInfo).RootCommand()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"completion", "tcsh"})
	if err := root.ExecuteContext(context.Background()); err == nil {
		t.Error("unsupported shell should be rejected")
	}
}

func TestPrintError(t *testing.T) {
	var out bytes.Buffer
	err := fmt.Errorf("render: %w", errors.Wrap(errors.ErrCodeIO, os.ErrPermission, "create out.png"))
	PrintError(&out, err)

	got := out.String()
	if !strings.HasPrefix(got, iconError+" ") || !strings.Contains(got, "create out.png: permission denied") {
		t.Errorf("PrintError() = %q", got)
	}
	if strings.Contains(got, string(errors.ErrCodeIO)) {
		t.Errorf("PrintError() = %q, should omit the error code", got)
	}
}
