// Package panel models the calculator side panels of the landing page:
// each panel owns its form and the last result it displayed.
package panel

// Form is a calculator form record. With returns a rebuilt copy.
type Form[F any, O any] interface {
	With(field, value string) (F, error)
	Estimate() (O, bool)
}

type Panel[F Form[F, O], O any] struct {
	name   string
	open   bool
	form   F
	result *O
	source F
}

func New[F Form[F, O], O any](name string, form F) *Panel[F, O] {
	return &Panel[F, O]{name: name, form: form}
}

func (p *Panel[F, O]) Name() string { return p.name }

func (p *Panel[F, O]) IsOpen() bool { return p.open }

func (p *Panel[F, O]) Open() { p.open = true }

func (p *Panel[F, O]) Close() { p.open = false }

func (p *Panel[F, O]) Form() F { return p.form }

// Set replaces one field. The form is left untouched on error.
func (p *Panel[F, O]) Set(field, value string) error {
	next, err := p.form.With(field, value)
	if err != nil {
		return err
	}
	p.form = next
	return nil
}

func (p *Panel[F, O]) Replace(form F) { p.form = form }

// Submit recalculates from the current form. A failed calculation keeps
// the previous result on display.
func (p *Panel[F, O]) Submit() bool {
	out, ok := p.form.Estimate()
	if !ok {
		return false
	}
	p.result = &out
	p.source = p.form
	return true
}

// Result returns the last successful calculation, if any.
func (p *Panel[F, O]) Result() (O, bool) {
	if p.result == nil {
		var zero O
		return zero, false
	}
	return *p.result, true
}

// ResultForm returns the form that produced the current result.
func (p *Panel[F, O]) ResultForm() F { return p.source }
