package parser

import (
	"fmt"
	"strings"

	"github.com/etnz/pdfimport"
)

// step is a section or an alternation group of a Template.
type step interface {
	apply(x *execution, t *pdfimport.Transaction) error
	seal(id string)
	String() string
}

// Template builds one transaction from one region.
type Template struct {
	subject func(ctx *Context) *pdfimport.Transaction
	steps   []step
	wrap    func(t *pdfimport.Transaction) *pdfimport.Transaction
	sealed  bool
}

// NewTemplate returns a template creating its transaction with subject.
func NewTemplate(subject func(ctx *Context) *pdfimport.Transaction) *Template {
	return &Template{subject: subject}
}

// Kind returns a subject function creating an empty transaction of kind k.
func Kind(k pdfimport.Kind) func(ctx *Context) *pdfimport.Transaction {
	return func(*Context) *pdfimport.Transaction { return pdfimport.New(k) }
}

func (t *Template) mustBeOpen() {
	if t.sealed {
		panic("parser: template modified after parser.New")
	}
}

// Section appends a new mandatory section declaring attrs.
func (t *Template) Section(attrs ...string) *Section {
	t.mustBeOpen()
	s := NewSection(attrs...)
	t.steps = append(t.steps, s)
	return s
}

// OneOf appends a mandatory alternation: the first candidate matching is applied.
func (t *Template) OneOf(candidates ...*Section) *Template {
	t.mustBeOpen()
	t.steps = append(t.steps, &oneOf{candidates: candidates})
	return t
}

// OptionalOneOf appends an alternation that does nothing when no candidate matches.
func (t *Template) OptionalOneOf(candidates ...*Section) *Template {
	t.mustBeOpen()
	t.steps = append(t.steps, &oneOf{candidates: candidates, optional: true})
	return t
}

// Wrap sets the function called on the completed transaction, returning nil discards it.
func (t *Template) Wrap(fn func(t *pdfimport.Transaction) *pdfimport.Transaction) *Template {
	t.mustBeOpen()
	t.wrap = fn
	return t
}

func (t *Template) seal() {
	if t.subject == nil {
		panic("parser: template without subject")
	}
	for i, s := range t.steps {
		switch s := s.(type) {
		case *Section:
			s.seal(fmt.Sprintf("#%d[%s]", i+1, strings.Join(s.attrs, ",")))
		default:
			s.seal(fmt.Sprintf("#%d", i+1))
		}
	}
	t.sealed = true
}

// errDiscarded is returned by run when the wrap function dropped the transaction.
type errDiscarded struct{ reason string }

func (e errDiscarded) Error() string { return e.reason }

// run executes the template on x.region.
// The returned transaction is nil when the run failed or was discarded.
func (t *Template) run(x *execution) (tx *pdfimport.Transaction, err error) {
	defer func() {
		if r := recover(); r != nil {
			tx, err = nil, fmt.Errorf("panic while extracting %s: %v", x.region, r)
		}
	}()

	x.ctx.Remove(KeyNegative)
	tx = t.subject(x.ctx)
	if tx == nil {
		return nil, errDiscarded{"no subject"}
	}
	for _, s := range t.steps {
		if err := s.apply(x, tx); err != nil {
			return nil, err
		}
	}
	if t.wrap != nil {
		if tx = t.wrap(tx); tx == nil {
			return nil, errDiscarded{"discarded by wrap"}
		}
	}
	if err := tx.Validate(); err != nil {
		return nil, errDiscarded{fmt.Sprintf("invalid %s: %v", tx.Kind, err)}
	}
	return tx, nil
}
