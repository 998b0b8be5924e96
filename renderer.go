package ask

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// canceledMarker replaces the answer on the final line of an aborted prompt.
const canceledMarker = "<canceled>"

// renderer paints prompt frames with as little flicker as possible.
//
// A frame is a stack of rows: an optional error row, the prompt row, one row
// per visible suggestion and an optional help row. Rows are collected in
// memory and committed with a single write by flush. Before a new frame is
// painted the rows of the previous one are erased one by one, so a shorter
// frame never leaves residue from a longer one and nothing above the prompt
// is touched.
//
// Rows are counted as the terminal lays them out: a row wider than the
// terminal wraps and takes several physical rows. The renderer remembers how
// many physical rows the last frame had and on which of them the terminal
// cursor was left. That state lives for one session: begin resets it and
// cleanup ends it.
type renderer struct {
	output      io.Writer    // Target output writer (typically the tty)
	colorScheme *ColorScheme // Color configuration for themed rendering
	frame       bytes.Buffer // Pending frame, including the erase sequence
	width       int          // Terminal width in cells (0 = rows never wrap)
	lastLines   int          // Physical rows painted by the last flushed frame
	cursorRow   int          // Physical row of the last frame holding the cursor
	lines       int          // Physical rows in the frame being built
	promptRow   int          // First physical row of the prompt
	cursorCol   int          // Visual column of the cursor from the prompt start
	done        bool         // Set by cleanup; no more repaint this session
}

// oneLine keeps text from breaking a row with its own line feeds.
var oneLine = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

// newRenderer creates a new renderer with the given output and color scheme.
func newRenderer(output io.Writer, colorScheme *ColorScheme) *renderer {
	return &renderer{
		output:      output,
		colorScheme: colorScheme,
	}
}

// begin prepares the renderer for a new session.
func (r *renderer) begin() {
	r.frame.Reset()
	r.lastLines = 0
	r.cursorRow = 0
	r.lines = 0
	r.promptRow = 0
	r.cursorCol = 0
	r.done = false
}

// resize sets the terminal width used to count wrapped rows.
func (r *renderer) resize(width int) {
	r.width = max(width, 0)
}

// resetPrompt starts a new frame that first erases the previous one.
func (r *renderer) resetPrompt() {
	if r.done {
		return
	}
	r.frame.Reset()
	r.erasePrevious()
	r.lines = 0
	r.promptRow = 0
	r.cursorCol = 0
}

// erasePrevious queues the sequence that clears exactly the rows of the last
// flushed frame and leaves the cursor at the start of its first row.
func (r *renderer) erasePrevious() {
	if r.lastLines == 0 {
		return
	}
	if r.cursorRow > 0 {
		fmt.Fprintf(&r.frame, "\x1b[%dA", r.cursorRow)
	}
	r.frame.WriteString("\r")
	for i := range r.lastLines {
		r.frame.WriteString("\x1b[2K")
		if i < r.lastLines-1 {
			r.frame.WriteString("\x1b[1B")
		}
	}
	if r.lastLines > 1 {
		fmt.Fprintf(&r.frame, "\x1b[%dA", r.lastLines-1)
	}
	r.lastLines = 0
	r.cursorRow = 0
}

// row appends one row to the frame. cells is the visible width of s.
func (r *renderer) row(s string, cells int) {
	if r.lines > 0 {
		r.frame.WriteString("\r\n")
	}
	r.frame.WriteString(s)
	r.lines += r.physicalRows(cells)
}

// physicalRows returns how many terminal rows a row of the given width takes.
func (r *renderer) physicalRows(cells int) int {
	if r.width == 0 || cells <= r.width {
		return 1
	}
	return (cells + r.width - 1) / r.width
}

// printErrorMessage adds the validation error row.
func (r *renderer) printErrorMessage(msg string) {
	text := "# " + oneLine.Replace(msg)
	r.row(r.colorScheme.Error.Paint(text), displayWidth(text))
}

// printPromptInput adds the prompt row: prefix, message, default hint and the
// text being edited. The cursor column is measured in terminal cells so that
// wide clusters such as CJK and emoji keep the cursor in place.
func (r *renderer) printPromptInput(message, defaultValue string, input *Input) {
	cs := r.colorScheme
	message = oneLine.Replace(message)
	head := "? " + message + " "
	line := cs.Prefix.Paint("?") + " " + cs.Message.Paint(message) + " "
	if defaultValue != "" {
		hint := "(" + oneLine.Replace(defaultValue) + ") "
		head += hint
		line += cs.Default.Paint(hint)
	}
	line += cs.Input.Paint(input.Content())

	r.promptRow = r.lines
	r.cursorCol = displayWidth(head) + displayWidth(input.BeforeCursor())
	cells := displayWidth(head) + displayWidth(input.Content())
	if r.width > 0 && r.cursorCol > 0 && r.cursorCol == cells && cells%r.width == 0 {
		// The cursor belongs at the start of the row after a full one, but
		// the terminal only wraps on the next printed cell.
		line += " \r"
		cells++
	}
	r.row(line, cells)
}

// printOption adds one suggestion row.
func (r *renderer) printOption(selected bool, text string) {
	text = oneLine.Replace(text)
	if selected {
		r.row(r.colorScheme.Selected.Paint("> "+text), 2+displayWidth(text))
		return
	}
	r.row(r.colorScheme.Option.Paint("  "+text), 2+displayWidth(text))
}

// printHelp adds the help row.
func (r *renderer) printHelp(text string) {
	text = "[" + oneLine.Replace(text) + "]"
	r.row(r.colorScheme.Help.Paint(text), displayWidth(text))
}

// flush moves the cursor back to the prompt row and commits the frame.
func (r *renderer) flush() error {
	if r.done {
		return nil
	}
	cursorRow, cursorCol := r.promptRow, r.cursorCol
	if r.width > 0 {
		cursorRow += r.cursorCol / r.width
		cursorCol = r.cursorCol % r.width
	}
	if up := r.lines - 1 - cursorRow; up > 0 {
		fmt.Fprintf(&r.frame, "\x1b[%dA", up)
	}
	r.frame.WriteString("\r")
	if cursorCol > 0 {
		fmt.Fprintf(&r.frame, "\x1b[%dC", cursorCol)
	}

	if err := r.commit(); err != nil {
		return err
	}
	r.lastLines = r.lines
	r.cursorRow = cursorRow
	return nil
}

// cleanup replaces the interactive frame with the answered line and stops
// repainting until the next session.
func (r *renderer) cleanup(message, answer string) error {
	return r.finish(message, r.colorScheme.Answer.Paint(oneLine.Replace(answer)))
}

// abort replaces the interactive frame with a canceled line.
func (r *renderer) abort(message string) error {
	return r.finish(message, r.colorScheme.Default.Paint(canceledMarker))
}

func (r *renderer) finish(message, tail string) error {
	if r.done {
		return nil
	}
	r.frame.Reset()
	r.erasePrevious()
	cs := r.colorScheme
	r.frame.WriteString(cs.Prefix.Paint("?") + " " + cs.Message.Paint(oneLine.Replace(message)) + " " + tail + "\r\n")
	r.lines = 0
	r.done = true
	return r.commit()
}

func (r *renderer) commit() error {
	_, err := r.output.Write(r.frame.Bytes())
	r.frame.Reset()
	if err != nil {
		return ioError("write frame", err)
	}
	return nil
}

// displayWidth returns the number of terminal cells s occupies. Each
// grapheme cluster is measured as a whole and capped at two cells, which is
// how terminals lay out emoji sequences joined with ZWJ.
func displayWidth(s string) int {
	width := 0
	state := -1
	for len(s) > 0 {
		var cluster string
		cluster, s, _, state = uniseg.StepString(s, state)
		width += min(runewidth.StringWidth(cluster), 2)
	}
	return width
}
