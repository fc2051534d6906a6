package lawcheck

import (
	"bufio"
	"io"
	"strconv"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// WriteHTML renders the report as an HTML fragment: a section containing a
// table with one row per finding and a summary paragraph. Rows are of class
// "ok" or "failed".
func (rep *Report) WriteHTML(w io.Writer) error {
	section := element(atom.Section, "class", "lawcheck")
	section.AppendChild(withText(element(atom.H2), "law check "+rep.RunID))
	table := element(atom.Table)
	thead, tr := element(atom.Thead), element(atom.Tr)
	for _, h := range textHeader {
		tr.AppendChild(withText(element(atom.Th), h))
	}
	thead.AppendChild(tr)
	table.AppendChild(thead)
	tbody := element(atom.Tbody)
	for _, f := range rep.Findings {
		class := "ok"
		if !f.Passed {
			class = "failed"
		}
		tr := element(atom.Tr, "class", class)
		tr.AppendChild(withText(element(atom.Td), f.Structure))
		tr.AppendChild(withText(element(atom.Td), f.Symbol))
		tr.AppendChild(withText(element(atom.Td), f.Law))
		tr.AppendChild(withText(element(atom.Td), strconv.Itoa(f.Samples)))
		tr.AppendChild(withText(element(atom.Td), f.result()))
		tbody.AppendChild(tr)
	}
	table.AppendChild(tbody)
	section.AppendChild(table)
	section.AppendChild(withText(element(atom.P), rep.Summary()))
	bw := bufio.NewWriter(w)
	if err := html.Render(bw, section); err != nil {
		return err
	}
	if err := bw.WriteByte('\n'); err != nil {
		return err
	}
	return bw.Flush()
}

// element creates an element node. attrs are key/value pairs.
func element(a atom.Atom, attrs ...string) *html.Node {
	n := &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
	for i := 0; i+1 < len(attrs); i += 2 {
		n.Attr = append(n.Attr, html.Attribute{Key: attrs[i], Val: attrs[i+1]})
	}
	return n
}

func withText(n *html.Node, text string) *html.Node {
	n.AppendChild(&html.Node{Type: html.TextNode, Data: text})
	return n
}
