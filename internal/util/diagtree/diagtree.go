package diagtree

import (
	"fmt"
	"io"
	"strings"

	"github.com/pulumi/pulumi/sdk/v3/go/common/util/contract"
)

// Node is a titled section or an untitled entry of a changelog tree.
// Sections keep their children in insertion order.
type Node struct {
	Title       string
	Description string
	Severity    Severity

	subfields       []*Node
	subfieldByTitle map[string]*Node
	doDisplay       bool
	parent          *Node
}

func (m *Node) subfield(name string) *Node {
	contract.Assertf(name != "", "we cannot display an empty name")
	if m.subfieldByTitle != nil {
		if v, ok := m.subfieldByTitle[name]; ok {
			return v
		}
	}
	v := &Node{
		Title:  name,
		parent: m,
	}
	if m.subfieldByTitle == nil {
		m.subfieldByTitle = map[string]*Node{}
	}
	m.subfieldByTitle[name] = v
	m.subfields = append(m.subfields, v)
	return v
}

// Label returns the section titled name, creating it on first use.
func (m *Node) Label(name string) *Node {
	return m.subfield(name)
}

// Value returns the section for an identifier, rendered as inline code.
func (m *Node) Value(value string) *Node {
	return m.subfield("`" + value + "`")
}

// Entry appends a displayed leaf. Entries are never merged, even when their
// text repeats.
func (m *Node) Entry(level Severity, msg string, a ...any) *Node {
	v := &Node{parent: m}
	m.subfields = append(m.subfields, v)
	v.SetDescription(level, msg, a...)
	return v
}

func (m *Node) SetDescription(level Severity, msg string, a ...any) {
	for v := m; v != nil && !v.doDisplay; v = v.parent {
		v.doDisplay = true
	}
	if len(a) > 0 {
		msg = fmt.Sprintf(msg, a...)
	}
	m.Description = msg
	m.Severity = level
}

// Prune drops every branch without a displayed entry.
func (m *Node) Prune() {
	sfs := []*Node{}
	for _, v := range m.subfields {
		if !v.doDisplay {
			continue
		}
		sfs = append(sfs, v)
		v.Prune()
	}
	if len(sfs) == 0 {
		sfs = nil
	}
	m.subfields = sfs
	m.subfieldByTitle = nil
	for _, child := range sfs {
		if child.Title == "" {
			continue
		}
		if m.subfieldByTitle == nil {
			m.subfieldByTitle = make(map[string]*Node, len(sfs))
		}
		m.subfieldByTitle[child.Title] = child
	}
}

func (m *Node) levelPrefix(level int) string {
	switch level {
	case 0:
		return "### "
	case 1:
		return "#### "
	}
	return indent(level) + "- "
}

func indent(level int) string {
	if level < 2 {
		return ""
	}
	return strings.Repeat("  ", level-2)
}

type cappedWriter struct {
	// The number of remaining lines before we hit the cap.
	remaining int
	out       io.Writer
}

func (c *cappedWriter) incr() {
	if c.remaining > 0 {
		// We never step past 0, because -1 indicates that we should always print
		c.remaining--
	}
}

func (c *cappedWriter) Write(p []byte) (n int, err error) {
	if c.remaining > 0 || c.remaining == -1 {
		return c.out.Write(p)
	}
	// We pretend we finished the write, but we do nothing.
	return len(p), nil
}

// Display renders the tree as markdown, writing at most max lines (-1 for no
// limit). It returns the number of entries in the tree, displayed or not.
func (m *Node) Display(out io.Writer, max int) int {
	writer := &cappedWriter{max, out}
	return m.display(writer, 0)
}

func (m *Node) display(out *cappedWriter, level int) int {
	write := func(s string) {
		_, err := out.Write([]byte(s))
		contract.AssertNoErrorf(err, "failed to write display")
	}
	if m == nil || !m.doDisplay {
		// Nothing to display
		return 0
	}

	if m.Title == "" && m.parent != nil {
		write(indent(level) + "- " + m.severity() + m.Description + "\n")
		out.incr()
		return 1
	}

	childLevel := level
	if m.Title != "" {
		display := m.levelPrefix(level) + m.Title
		if m.Description != "" {
			display += " " + m.Description
		}
		if level > 1 {
			display += ":"
		}
		write(display + "\n")
		out.incr()
		if level <= 1 {
			write("\n")
		}
		childLevel = level + 1
	}

	var displayed int
	for _, child := range m.subfields {
		displayed += child.display(out, childLevel)
	}
	if m.Title != "" && level == 1 {
		write("\n")
	}
	return displayed
}

// Get the string to display the severity of an entry.
func (m *Node) severity() string {
	if m.Severity == None {
		return ""
	}
	return m.Severity.String() + " "
}

// The severity of an entry.
type Severity struct{ s string }

var (
	None   = Severity{""}
	Info   = Severity{"`🟢`"}
	Warn   = Severity{"`🟡`"}
	Danger = Severity{"`🔴`"}
)

func (s Severity) String() string {
	return s.s
}
