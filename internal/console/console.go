// Package console drives the landing page shell from a terminal, one
// command per line.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"

	"calorie-calculator/internal/forms"
	"calorie-calculator/internal/panel"
	"calorie-calculator/internal/report"
)

const helpText = `commands:
  open calories|steps   open a calculator panel
  close                 close the open panel
  set <field> [value]   edit a field of the open panel (no value clears it)
  submit                calculate from the current fields
  show                  print the fields and the displayed result
  sidebar               toggle the sidebar
  help                  print this help
  quit                  leave the shell
`

type Console struct {
	shell *panel.Shell
	out   io.Writer
}

func New(shell *panel.Shell, out io.Writer) *Console {
	return &Console{shell: shell, out: out}
}

// Run reads commands until quit or end of input.
func (c *Console) Run(in io.Reader) error {
	sc := bufio.NewScanner(in)
	for {
		fmt.Fprint(c.out, c.prompt())
		if !sc.Scan() {
			fmt.Fprintln(c.out)
			return sc.Err()
		}
		quit, err := c.Exec(sc.Text())
		if err != nil {
			fmt.Fprintf(c.out, "error: %v\n", err)
		}
		if quit {
			return nil
		}
	}
}

func (c *Console) prompt() string {
	if a := c.shell.Active(); a != "" {
		return a + "> "
	}
	return "> "
}

// Exec runs a single command line.
func (c *Console) Exec(line string) (quit bool, err error) {
	cmd, rest, _ := strings.Cut(strings.TrimSpace(line), " ")
	rest = strings.TrimSpace(rest)

	switch strings.ToLower(cmd) {
	case "":
		return false, nil
	case "quit", "exit":
		return true, nil
	case "help":
		_, err = io.WriteString(c.out, helpText)
	case "open":
		if !c.shell.Open(rest) {
			return false, fmt.Errorf("unknown panel %q", rest)
		}
		err = c.show()
	case "close":
		c.shell.CloseAll()
	case "sidebar":
		c.shell.ToggleSidebar()
		_, err = fmt.Fprintf(c.out, "sidebar open: %v\n", c.shell.SidebarOpen)
	case "set":
		field, value, _ := strings.Cut(rest, " ")
		handled, serr := c.shell.Set(field, strings.TrimSpace(value))
		if !handled {
			return false, errNoPanel
		}
		err = serr
	case "submit":
		opened, ok := c.shell.Submit()
		if !opened {
			return false, errNoPanel
		}
		if !ok {
			if err = report.NoResult(c.out); err != nil {
				return false, err
			}
		}
		err = c.result()
	case "show":
		if c.shell.Active() == "" {
			return false, errNoPanel
		}
		err = c.show()
	default:
		return false, fmt.Errorf("unknown command %q, try help", cmd)
	}
	return false, err
}

var errNoPanel = errors.New("no panel is open")

func (c *Console) show() error {
	var (
		fields []string
		values url.Values
	)
	switch c.shell.Active() {
	case panel.CaloriesPanel:
		fields, values = forms.CalorieFields, c.shell.Calories.Form().Values()
	case panel.StepsPanel:
		fields, values = forms.StepsFields, c.shell.Steps.Form().Values()
	}
	for _, f := range fields {
		if _, err := fmt.Fprintf(c.out, "  %s = %q\n", f, values.Get(f)); err != nil {
			return err
		}
	}
	return c.result()
}

// result prints the result the panel currently displays, which may come
// from an earlier successful submit.
func (c *Console) result() error {
	switch c.shell.Active() {
	case panel.CaloriesPanel:
		if out, ok := c.shell.Calories.Result(); ok {
			return report.Calories(c.out, out)
		}
	case panel.StepsPanel:
		if out, ok := c.shell.Steps.Result(); ok {
			in, _ := c.shell.Steps.ResultForm().Input()
			return report.Steps(c.out, in.StepCount, out)
		}
	}
	return nil
}
