package cli

import (
	"fmt"
	"io"
	"sync"

	"assethub/internal/client/httpclient"
	"assethub/internal/errors"
)

// Printer is a Notifier for one-shot commands: each toast is one styled line.
type Printer struct {
	mu sync.Mutex
	w  io.Writer
}

func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

func (p *Printer) Success(message string) {
	p.line(successStyle.Render(iconSuccess + " " + message))
}

func (p *Printer) Error(message string, err error) {
	p.line(errorStyle.Render(iconError + " " + errorText(message, err)))
}

// Notice prints a neutral, highlighted line such as an empty-state message.
func (p *Printer) Notice(message string) {
	p.line(warningStyle.Render(iconWarning + " " + message))
}

func (p *Printer) line(s string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintln(p.w, s)
}

// Toast is a Notifier that keeps the latest message for the browser's status line.
type Toast struct {
	mu     sync.Mutex
	text   string
	failed bool
}

func (t *Toast) Success(message string) {
	t.set(message, false)
}

func (t *Toast) Error(message string, err error) {
	t.set(errorText(message, err), true)
}

// Last returns the latest message and whether it reported a failure.
func (t *Toast) Last() (string, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.text, t.failed
}

func (t *Toast) Clear() {
	t.set("", false)
}

func (t *Toast) set(text string, failed bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.text = text
	t.failed = failed
}

// errorText prefers the server's message over the transport error string.
func errorText(message string, err error) string {
	if err == nil {
		return message
	}

	var apiErr *httpclient.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return message + ": " + apiErr.Message
	}

	return message + ": " + err.Error()
}

// Table prints rows under headers as a bordered table.
func (p *Printer) Table(headers []string, rows [][]string) {
	p.line(renderTable(headers, rows))
}

// Heading prints a section title.
func (p *Printer) Heading(title string) {
	p.line(titleStyle.Render(title))
}
