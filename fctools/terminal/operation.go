package terminal

import (
	"fmt"
	"time"
)

const spinner = `|/-\`

// Operation represents a long running operation
type Operation struct {
	channel chan bool
}

// NewOperation starts a long running operation
func NewOperation(format string, a ...interface{}) *Operation {
	c := make(chan bool)
	spinFrames := []rune(spinner)
	spinFramesSize := len(spinFrames)
	message := fmt.Sprintf(format, a...)

	go func() {
		ticker := time.NewTicker(50 * time.Millisecond)
		defer ticker.Stop()
		pos := 0

	L:
		for {
			select {
			case <-c:
				break L
			case <-ticker.C:
				fmt.Fprintf(Output, "\r  %s%s%s %s ", yellow, message, reset, string(spinFrames[pos%spinFramesSize]))
				pos++
			}
		}
	}()

	return &Operation{
		channel: c,
	}
}

// Success informs that the operation is over
func (o *Operation) Success(format string, a ...interface{}) {
	o.finished("✓", green, fmt.Sprintf(format, a...))
}

// Error informs that the operation failed
func (o *Operation) Error(err error, format string, a ...interface{}) {
	o.finished("✗", red, withErr(err, format, a...))
}

func (o *Operation) finished(symbol string, color string, message string) {
	o.channel <- true

	fmt.Fprint(Output, "\033[2K")
	fmt.Fprintf(Output, "\r%s %s%s%s \n", symbol, color, message, reset)
}
