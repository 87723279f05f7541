package cli

import (
	"bytes"
	"io"

	"github.com/spf13/cobra"
)

// ExecuteCommand runs a command with args, feeding it in, and returns its output
func ExecuteCommand(root *cobra.Command, in io.Reader, args ...string) (output string, err error) {
	_, output, err = ExecuteCommandC(root, in, args...)
	return output, err
}

// ExecuteCommandC runs a command and returns the command, its output, and any error
func ExecuteCommandC(root *cobra.Command, in io.Reader, args ...string) (c *cobra.Command, output string, err error) {
	buf := new(bytes.Buffer)
	root.SetIn(in)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)

	c, err = root.ExecuteC()

	return c, buf.String(), err
}
