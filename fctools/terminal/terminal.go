package terminal

import (
	"fmt"
	"io"
	"os"
)

const (
	reset  = "\033[0m"
	red    = "\033[31m"
	green  = "\033[32m"
	yellow = "\033[33m"
	cyan   = "\033[36m"
)

// Output is where feedback is printed. Stdout is left to command results.
var Output io.Writer = os.Stderr

// Error print error
func Error(err error, format string, a ...interface{}) {
	fmt.Fprintf(Output, "%s%s%s\n", red, withErr(err, format, a...), reset)
}

// Info print an informative message
func Info(format string, a ...interface{}) {
	fmt.Fprintf(Output, "%s%s%s\n", cyan, fmt.Sprintf(format, a...), reset)
}

func withErr(err error, format string, a ...interface{}) string {
	message := fmt.Sprintf(format, a...)
	if err != nil {
		message = fmt.Sprintf("%s [%s]", message, err)
	}
	return message
}
