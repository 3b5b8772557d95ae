package console

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/julien-sobczak/the-notelinter/pkg/text"
)

// ProgressLog reports the progress of a long operation by rewriting the same terminal line.
type ProgressLog struct {
	output      io.Writer
	showBar     bool
	showPercent bool
	maxSteps    int
	maxWidth    int
}

type Option func(*ProgressLog)

func NewProgressLog(maxSteps int, options ...Option) *ProgressLog {
	result := &ProgressLog{
		output:      os.Stderr,
		showPercent: false,
		showBar:     true,
		maxSteps:    maxSteps,
		maxWidth:    80,
	}
	for _, option := range options {
		option(result)
	}
	return result
}

func ToWriter(w io.Writer) Option {
	return func(s *ProgressLog) {
		s.output = w
	}
}

func HideBar() Option {
	return func(s *ProgressLog) {
		s.showBar = false
	}
}

func ShowPercent() Option {
	return func(s *ProgressLog) {
		s.showPercent = true
	}
}

// LineLength sets the display width of the line.
func LineLength(width int) Option {
	return func(s *ProgressLog) {
		s.maxWidth = width
	}
}

func (l *ProgressLog) Log(currentStep int, message string) {
	i100 := 100
	if l.maxSteps > 0 {
		i100 = currentStep * 100 / l.maxSteps
	}

	// We show between 0 and 10 '#' depending on the percent
	i10 := i100 / 10

	var sb strings.Builder
	if l.showBar {
		sb.WriteString(strings.Repeat("#", i10))
		sb.WriteString(strings.Repeat(" ", 10-i10))
		sb.WriteRune(' ')
	}
	if l.showPercent {
		sb.WriteString(fmt.Sprintf("(%3d%%) ", i100))
	} else {
		sb.WriteString(fmt.Sprintf("(%d/%d) ", currentStep, l.maxSteps))
	}
	sb.WriteString(message)

	fmt.Fprint(l.output, l.fit(sb.String()), "\r")
}

// Clear erases the progress line. A non-empty message is printed on its own line instead.
func (l *ProgressLog) Clear(newMessage string) {
	fmt.Fprint(l.output, l.fit(newMessage))
	if newMessage == "" {
		fmt.Fprint(l.output, "\r")
	} else {
		fmt.Fprint(l.output, "\n")
	}
}

// fit truncates or pads a line to the display width.
// Note paths often contain emojis: widths are never counted in bytes.
func (l *ProgressLog) fit(line string) string {
	if text.CharWidth(line) > l.maxWidth {
		var sb strings.Builder
		width := 0
		for _, r := range line {
			w := text.CharWidth(string(r))
			if width+w > l.maxWidth {
				break
			}
			sb.WriteRune(r)
			width += w
		}
		line = sb.String()
	}
	return text.PadEnd(line, l.maxWidth, ' ')
}
