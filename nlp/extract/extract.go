// Package extract pulls the readable text out of a news document:
//
//	<doc>
//	  <title>Oil Prices</title>
//	  <text><p>Oil prices rose ...</p><p>...</p></text>
//	</doc>
//
// The result is the title followed by the text of every element nested
// directly under a <text> element, in document order, joined by spaces.
package extract

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrParse is returned for input that is not well-formed or has no title.
var ErrParse = errors.New("extract: parse error")

// node is an element with its child elements and its text content.
type node struct {
	XMLName xml.Name
	Nodes   []node
	text    string
}

// UnmarshalXML reads the element in document order. Character data and
// child content are appended as they occur, with a space before each child.
func (n *node) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	n.XMLName = start.Name
	var b strings.Builder
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			var c node
			if err := c.UnmarshalXML(d, t); err != nil {
				return err
			}
			b.WriteByte(' ')
			b.WriteString(c.text)
			n.Nodes = append(n.Nodes, c)
		case xml.CharData:
			b.Write(t)
		case xml.EndElement:
			n.text = b.String()
			return nil
		}
	}
}

// Text returns the title and body text of the document in raw.
func Text(raw string) (string, error) {
	root, err := parse(raw)
	if err != nil {
		return "", err
	}

	title := root.child("title")
	if title == nil {
		return "", fmt.Errorf("%w: no <title> element", ErrParse)
	}

	parts := []string{title.content()}
	root.walk(func(n *node) {
		if n.XMLName.Local != "text" {
			return
		}
		for i := range n.Nodes {
			parts = append(parts, n.Nodes[i].content())
		}
	})
	return strings.Join(parts, " "), nil
}

func parse(raw string) (*node, error) {
	d := xml.NewDecoder(strings.NewReader(raw))
	// Input is already decoded text; ignore any declared charset.
	d.CharsetReader = func(_ string, in io.Reader) (io.Reader, error) { return in, nil }

	var root node
	if err := d.Decode(&root); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	for {
		tok, err := d.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrParse, err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			return nil, fmt.Errorf("%w: junk after document element <%s>", ErrParse, t.Name.Local)
		case xml.CharData:
			if strings.TrimSpace(string(t)) != "" {
				return nil, fmt.Errorf("%w: text after document element", ErrParse)
			}
		}
	}
	return &root, nil
}

func (n *node) child(name string) *node {
	for i := range n.Nodes {
		if n.Nodes[i].XMLName.Local == name {
			return &n.Nodes[i]
		}
	}
	return nil
}

// walk visits every descendant of n, excluding n, in document order.
func (n *node) walk(fn func(*node)) {
	for i := range n.Nodes {
		fn(&n.Nodes[i])
		n.Nodes[i].walk(fn)
	}
}

// content is the text of n and its descendants in document order.
func (n *node) content() string {
	return strings.TrimSpace(n.text)
}
