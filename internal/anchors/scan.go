package anchors

import (
	"cmp"
	"go/ast"
	"go/token"
	"slices"
	"strings"

	"golang.org/x/tools/go/ast/inspector"
)

// DirectivePrefix starts an anchor directive comment.
const DirectivePrefix = "//seme:anchor"

// DirectiveStatus tells what happened to a directive during the scan.
type DirectiveStatus int

const (
	_ DirectiveStatus = iota

	// DirectiveAttached the directive marks a statement.
	DirectiveAttached

	// DirectiveUnattached there is no statement the directive can refer to.
	DirectiveUnattached

	// DirectiveMalformed the directive has no group or the group name is invalid.
	DirectiveMalformed
)

func (s DirectiveStatus) String() string {
	switch s {
	case DirectiveAttached:
		return "attached"
	case DirectiveUnattached:
		return "unattached"
	case DirectiveMalformed:
		return "malformed"
	default:
		return "directive-status-invalid"
	}
}

// Directive is an anchor directive found in the source.
type Directive struct {
	Pos    token.Pos
	Text   string
	Group  string
	Status DirectiveStatus

	// Start and End delimit the attached statement.
	Start token.Pos
	End   token.Pos
}

// Scan looks for anchor directives in files, attaches them to statements and registers
// attached ones in the index. Directives are returned in source order.
func Scan(fset *token.FileSet, files []*ast.File, pector *inspector.Inspector, idx *Index) []Directive {
	var res []Directive
	for _, file := range files {
		for _, group := range file.Comments {
			for _, c := range group.List {
				if d, ok := parseDirective(c); ok {
					res = append(res, d)
				}
			}
		}
	}
	if len(res) == 0 {
		return nil
	}

	stmts := statementsByLine(fset, pector)
	for i := range res {
		d := &res[i]
		if d.Status == DirectiveMalformed {
			continue
		}

		stmt := attachTarget(fset, stmts, d.Pos)
		if stmt == nil {
			d.Status = DirectiveUnattached
			continue
		}

		d.Status = DirectiveAttached
		d.Start = stmt.Pos()
		d.End = stmt.End() - 1
	}

	slices.SortFunc(res, func(a, b Directive) int {
		return cmp.Compare(a.Pos, b.Pos)
	})

	// Outer spans go first, so nothing has to be moved under a new parent later.
	attached := slices.DeleteFunc(slices.Clone(res), func(d Directive) bool {
		return d.Status != DirectiveAttached
	})
	slices.SortStableFunc(attached, func(a, b Directive) int {
		if c := cmp.Compare(a.Start, b.Start); c != 0 {
			return c
		}
		return cmp.Compare(b.End, a.End)
	})
	for _, d := range attached {
		idx.Add(Mark{Group: d.Group, Directive: d.Pos}, d.Start, d.End)
	}

	return res
}

func parseDirective(c *ast.Comment) (Directive, bool) {
	rest, ok := strings.CutPrefix(c.Text, DirectivePrefix)
	if !ok {
		return Directive{}, false
	}
	if rest != "" && rest[0] != ' ' && rest[0] != '\t' {
		// Something like //seme:anchors, not ours.
		return Directive{}, false
	}

	d := Directive{
		Pos:  c.Slash,
		Text: c.Text,
	}
	fields := strings.Fields(rest)
	if len(fields) != 1 || !ValidGroup(fields[0]) {
		d.Status = DirectiveMalformed
		return d, true
	}
	d.Group = fields[0]

	return d, true
}

type lineKey struct {
	file *token.File
	line int
}

// statementsByLine maps lines to the statements starting on them. Only statements listed
// in blocks and case clauses are taken, function bodies themselves are not.
func statementsByLine(fset *token.FileSet, pector *inspector.Inspector) map[lineKey][]ast.Stmt {
	res := map[lineKey][]ast.Stmt{}
	add := func(list []ast.Stmt) {
		for _, stmt := range list {
			file := fset.File(stmt.Pos())
			if file == nil {
				continue
			}
			key := lineKey{file: file, line: file.Line(stmt.Pos())}
			res[key] = append(res[key], stmt)
		}
	}

	filter := []ast.Node{
		(*ast.BlockStmt)(nil),
		(*ast.CaseClause)(nil),
		(*ast.CommClause)(nil),
	}
	pector.Preorder(filter, func(n ast.Node) {
		switch v := n.(type) {
		case *ast.BlockStmt:
			add(v.List)
		case *ast.CaseClause:
			add(v.Body)
		case *ast.CommClause:
			add(v.Body)
		}
	})

	return res
}

// attachTarget picks the statement for a directive at pos. A statement which starts on the
// same line before the comment wins, otherwise the first statement of the next line is
// taken. The outermost one is chosen when several start at the same place.
func attachTarget(fset *token.FileSet, stmts map[lineKey][]ast.Stmt, pos token.Pos) ast.Stmt {
	file := fset.File(pos)
	if file == nil {
		return nil
	}
	line := file.Line(pos)

	trailing := slices.DeleteFunc(slices.Clone(stmts[lineKey{file: file, line: line}]), func(s ast.Stmt) bool {
		return s.Pos() >= pos
	})
	if stmt := outermost(trailing); stmt != nil {
		return stmt
	}

	if line >= file.LineCount() {
		return nil
	}

	return outermost(stmts[lineKey{file: file, line: line + 1}])
}

func outermost(list []ast.Stmt) ast.Stmt {
	if len(list) == 0 {
		return nil
	}

	return slices.MinFunc(list, func(a, b ast.Stmt) int {
		if c := cmp.Compare(a.Pos(), b.Pos()); c != 0 {
			return c
		}
		return cmp.Compare(b.End(), a.End())
	})
}
