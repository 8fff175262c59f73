package ui

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Confirm writes prompt to out and reads a yes/no answer from in.
// Anything but "y" or "yes" is a no.
func Confirm(in io.Reader, out io.Writer, prompt string) bool {
	fmt.Fprintf(out, "%s [y/N]: ", StyleWarning.Render(prompt))
	line, _ := bufio.NewReader(in).ReadString('\n')
	line = strings.TrimSpace(strings.ToLower(line))
	return line == "y" || line == "yes"
}
