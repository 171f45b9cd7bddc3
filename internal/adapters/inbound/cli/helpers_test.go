package cli_test

import (
	"bytes"
	"testing"

	"github.com/zuucrates/cargo-configure/internal/adapters/inbound/cli"
)

// run executes the root command with args and returns stdout and the error.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := cli.NewRootCmdForTest()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(append(args, "--log-level", "disabled"))
	err := root.Execute()
	return out.String(), err
}
