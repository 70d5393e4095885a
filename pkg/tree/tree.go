package tree

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Gobusters/ectolinq"

	"github.com/Ramsey-B/clover/pkg/models"
)

const (
	depthMarker     = "-"
	markersPerLevel = 2
	segmentSep      = ", "
)

// Renderer formats an account hierarchy as indented text, one line per account:
//
//	> GE (Manufacturing, R&D): Daniel Testperson
//	--> Jet Engines (Manufacturing, R&D, Aerospace): Daniel Testperson
//	----> DoD Contracts (R&D, Aerospace, Defense): William Testperson
type Renderer struct {
	unassignedRep string
}

type Option func(*Renderer)

// WithUnassignedRep sets the text printed for accounts without a sales rep.
// Defaults to the empty string.
func WithUnassignedRep(label string) Option {
	return func(r *Renderer) {
		r.unassignedRep = label
	}
}

func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Lines walks the hierarchy depth first, parents before children, children in
// insertion order. The input must be a tree: cycles are not detected and
// make the walk recurse until the stack is exhausted.
func (r *Renderer) Lines(root models.AccountLike) []string {
	lines := []string{}
	if root == nil {
		return lines
	}
	return r.appendLines(lines, root.AsAccount(), 0)
}

func (r *Renderer) appendLines(lines []string, account *models.Account, depth int) []string {
	if account == nil {
		return lines
	}

	lines = append(lines, r.Line(account, depth))
	for _, child := range account.Children() {
		lines = r.appendLines(lines, child, depth+1)
	}
	return lines
}

// Line formats a single account at the given depth
func (r *Renderer) Line(account models.AccountLike, depth int) string {
	a := account.AsAccount()

	names := ectolinq.Map(a.MarketSegments(), func(s *models.MarketSegment) string {
		return s.Name()
	})

	return fmt.Sprintf("%s> %s (%s): %s",
		Indent(depth),
		a.Name(),
		strings.Join(names, segmentSep),
		r.repDisplay(a.SalesRep()),
	)
}

func (r *Renderer) repDisplay(rep *models.SalesRep) string {
	if rep == nil {
		return r.unassignedRep
	}
	return rep.String()
}

// Render returns the whole tree, each line terminated by a newline
func (r *Renderer) Render(root models.AccountLike) string {
	var sb strings.Builder
	_ = r.Write(&sb, root)
	return sb.String()
}

func (r *Renderer) Write(w io.Writer, root models.AccountLike) error {
	for _, line := range r.Lines(root) {
		if _, err := io.WriteString(w, line+"\n"); err != nil {
			return err
		}
	}
	return nil
}

// Indent returns the prefix placed before "> " at the given depth
func Indent(depth int) string {
	if depth <= 0 {
		return ""
	}
	return strings.Repeat(depthMarker, markersPerLevel*depth)
}

// Print writes the tree rooted at account to stdout using default options.
func Print(account models.AccountLike) {
	_ = NewRenderer().Write(os.Stdout, account)
}
