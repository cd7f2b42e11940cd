package notify

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"html/template"
	"io"
	"strings"
	"sync"

	"golang.org/x/net/html"

	"bookings/internal/ui"
)

// ConsolePresenter renders dialogs on a terminal. Inputs are prompted in
// form order; typing "c" at any prompt cancels the dialog.
type ConsolePresenter struct {
	in  *bufio.Reader
	out io.Writer

	// modal serializes dialogs; mu guards only writes to out, so toasts
	// still print while a dialog waits for input.
	modal sync.Mutex
	mu    sync.Mutex
}

func NewConsolePresenter(in io.Reader, out io.Writer) *ConsolePresenter {
	return &ConsolePresenter{in: bufio.NewReader(in), out: out}
}

func (p *ConsolePresenter) ShowToast(_ context.Context, t *Toast) {
	p.printf("[%s] %s\n", t.Icon, t.Msg)
}

func (p *ConsolePresenter) printf(format string, args ...any) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintf(p.out, format, args...)
}

func (p *ConsolePresenter) Fire(ctx context.Context, m Modal) (Outcome, error) {
	if m.WillOpen != nil {
		m.WillOpen()
	}

	p.modal.Lock()
	defer p.modal.Unlock()

	var head strings.Builder
	if m.Icon != IconNone {
		fmt.Fprintf(&head, "[%s] ", m.Icon)
	}
	for _, line := range []string{m.Title, m.Text, htmlText(m.HTML), m.Footer} {
		if line != "" {
			head.WriteString(line + "\n")
		}
	}
	p.printf("%s", head.String())

	if m.DidOpen != nil {
		m.DidOpen()
	}

	if m.Form != nil {
		for _, in := range m.Form.Inputs {
			if in.Disabled() {
				continue
			}
			if reason, ok := p.promptInput(ctx, in); !ok {
				return Outcome{Reason: reason}, nil
			}
		}
	}

	if !m.ShowConfirmButton {
		if _, err := p.readLine(ctx, "press enter to close: "); err != nil {
			return Outcome{Reason: DismissEsc}, nil
		}
		return Outcome{Reason: DismissClose}, nil
	}

	answer, err := p.readLine(ctx, "confirm? [Y/c]: ")
	if err != nil || strings.EqualFold(answer, "c") {
		return Outcome{Reason: DismissCancel}, nil
	}

	out := Outcome{Reason: DismissConfirm}
	if m.Form != nil {
		out.Values = m.Form.Values()
	}
	return out, nil
}

func (p *ConsolePresenter) promptInput(ctx context.Context, in *ui.Input) (DismissReason, bool) {
	label := in.Placeholder
	if label == "" {
		label = in.Name
	}
	for {
		line, err := p.readLine(ctx, label+": ")
		if err != nil {
			return DismissEsc, false
		}
		if strings.EqualFold(line, "c") {
			return DismissCancel, false
		}
		if err := in.Set(line); err != nil {
			p.printf("  %v\n", err)
			continue
		}
		return "", true
	}
}

func (p *ConsolePresenter) readLine(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	p.printf("%s", prompt)
	line, err := p.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// htmlText flattens dialog markup to plain text, keeping link targets.
func htmlText(markup template.HTML) string {
	var b strings.Builder
	var href string
	z := html.NewTokenizer(strings.NewReader(string(markup)))
	for {
		switch z.Next() {
		case html.ErrorToken:
			return strings.TrimSpace(b.String())
		case html.TextToken:
			b.WriteString(strings.TrimSpace(string(z.Text())))
		case html.StartTagToken:
			tok := z.Token()
			if tok.Data == "a" {
				for _, a := range tok.Attr {
					if a.Key == "href" {
						href = a.Val
					}
				}
			}
		case html.EndTagToken:
			tok := z.Token()
			switch tok.Data {
			case "a":
				if href != "" {
					fmt.Fprintf(&b, " (%s)", href)
					href = ""
				}
			case "p", "div":
				b.WriteString("\n")
			}
		}
	}
}
