package cli

import (
	"bytes"
	"errors"
	"testing"

	"github.com/spf13/cobra"
)

func TestVersionCommand(t *testing.T) {
	root := NewRootCommand("tool", "short", "long")
	root.AddCommand(NewVersionCommand("tool"))

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"version"})
	if err := root.Execute(); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	expect := "tool v" + Version + "\n"
	if actual := out.String(); actual != expect {
		t.Errorf("wrong output:\n\texpect: %q\n\tactual: %q", expect, actual)
	}
}

func TestInitCommand(t *testing.T) {
	called := false
	root := NewRootCommand("tool", "short", "long")
	root.AddCommand(NewInitCommand("tool", func(cmd *cobra.Command, args []string) error {
		called = true
		return errors.New("boom")
	}))

	root.SetArgs([]string{"init"})
	err := root.Execute()
	if !called {
		t.Errorf("expected init to run")
	}
	if err == nil || err.Error() != "boom" {
		t.Errorf("expected error %q, got %v", "boom", err)
	}

	root.SetArgs([]string{"init", "extra"})
	if err := root.Execute(); err == nil {
		t.Errorf("expected init to reject arguments")
	}
}

func TestPrintError(t *testing.T) {
	var out bytes.Buffer
	printError(&out, errors.New("bad input"))
	if actual := out.String(); actual != "Error: bad input\n" {
		t.Errorf("wrong output: %q", actual)
	}
}
