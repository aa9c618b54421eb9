/*
Package bstdbg implements helpers to debug persistent binary search trees.

Renderers only read the shape of a tree, starting from its root node
(see bst.Tree.Root and bst.Dictionary.Root), and never alter it.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package bstdbg

import (
	"fmt"
	"io"
	"text/template"

	"github.com/cockroachdb/errors"
	"github.com/npillmayer/fpdict/persistent/bst"
	"github.com/npillmayer/schuko/tracing"
	tp "github.com/xlab/treeprint"
)

// tracer traces with key 'fp.bstdbg'.
func tracer() tracing.Trace {
	return tracing.Select("fp.bstdbg")
}

// Absent is printed in place of a missing child, if the sibling is present.
const Absent = "∅"

// Print returns an indented text drawing of the tree under root. Children are tagged
// with L or R. If a node has just one child, the missing one is drawn as Absent.
func Print[K any, V any](root *bst.Node[K, V]) string {
	p := tp.New()
	if root == nil {
		p.AddNode(Absent)
		return p.String()
	}
	printChildren(p.AddBranch(root.String()), root)
	return p.String()
}

func printChildren[K any, V any](p tp.Tree, node *bst.Node[K, V]) {
	if node.IsLeaf() {
		return
	}
	printChild(p, "L", node.Left())
	printChild(p, "R", node.Right())
}

func printChild[K any, V any](p tp.Tree, tag string, child *bst.Node[K, V]) {
	if child == nil {
		p.AddMetaNode(tag, Absent)
		return
	}
	if child.IsLeaf() {
		p.AddMetaNode(tag, child.String())
		return
	}
	branch := p.AddMetaBranch(tag, child.String())
	printChildren(branch, child)
}

// --- GraphViz --------------------------------------------------------------

// Parameters for GraphViz drawing.
type graphParamsType struct {
	Fontname  string
	NodeTmpl  *template.Template
	EmptyTmpl *template.Template
	EdgeTmpl  *template.Template
}

type node struct {
	Name  string
	Label string
}

type edge struct {
	From, To  string
	Side      string
	Invisible bool
}

// ToGraphViz outputs a diagram for the tree under root. The diagram is in
// GraphViz (DOT) format. Absent children are drawn as invisible placeholders,
// keeping left children to the left and right children to the right.
func ToGraphViz[K any, V any](root *bst.Node[K, V], w io.Writer) error {
	gparams := graphParamsType{Fontname: "Helvetica"}
	gparams.NodeTmpl = template.Must(template.New("bstnode").Parse(bstNodeTmpl))
	gparams.EmptyTmpl = template.Must(template.New("bstempty").Parse(bstEmptyTmpl))
	gparams.EdgeTmpl = template.Must(template.New("bstedge").Parse(bstEdgeTmpl))
	head := template.Must(template.New("bst").Parse(graphHeadTmpl))
	if err := head.Execute(w, gparams); err != nil {
		return errors.Wrap(err, "writing graph header")
	}
	g := grapher[K, V]{w: w, params: &gparams, names: make(map[*bst.Node[K, V]]string)}
	if root != nil {
		if _, err := g.nodes(root); err != nil {
			return err
		}
	}
	tracer().Debugf("wrote %d nodes to digraph", len(g.names))
	if _, err := io.WriteString(w, "}\n"); err != nil {
		return errors.Wrap(err, "writing graph footer")
	}
	return nil
}

type grapher[K any, V any] struct {
	w      io.Writer
	params *graphParamsType
	names  map[*bst.Node[K, V]]string
	empty  int
}

func (g *grapher[K, V]) nodes(n *bst.Node[K, V]) (string, error) {
	name := fmt.Sprintf("node%05d", len(g.names)+1)
	g.names[n] = name
	if err := g.params.NodeTmpl.Execute(g.w, node{Name: name, Label: n.String()}); err != nil {
		return "", errors.Wrapf(err, "writing node %s", n)
	}
	if n.IsLeaf() {
		return name, nil
	}
	for _, ch := range []struct {
		side  string
		child *bst.Node[K, V]
	}{{"L", n.Left()}, {"R", n.Right()}} {
		chname, err := g.child(ch.child)
		if err != nil {
			return "", err
		}
		e := edge{From: name, To: chname, Side: ch.side, Invisible: ch.child == nil}
		if err := g.params.EdgeTmpl.Execute(g.w, e); err != nil {
			return "", errors.Wrapf(err, "writing edge %s -> %s", name, chname)
		}
	}
	return name, nil
}

func (g *grapher[K, V]) child(ch *bst.Node[K, V]) (string, error) {
	if ch != nil {
		return g.nodes(ch)
	}
	g.empty++
	name := fmt.Sprintf("empty%05d", g.empty)
	if err := g.params.EmptyTmpl.Execute(g.w, node{Name: name}); err != nil {
		return "", errors.Wrapf(err, "writing placeholder %s", name)
	}
	return name, nil
}

// --- Templates --------------------------------------------------------

const graphHeadTmpl = `digraph g {
  graph [labelloc="t" label="" splines=true overlap=false ordering="out"];
   node [fontname = "{{ .Fontname }}" fontsize=14] ;
   edge [fontname = "{{ .Fontname }}" fontsize=11] ;
`

const bstNodeTmpl = `{{ .Name }}	[ label={{ printf "%q" .Label }} shape=ellipse style=filled fillcolor=lightblue3 ] ;
`

const bstEmptyTmpl = `{{ .Name }}	[ label="" shape=point style=invis ] ;
`

const bstEdgeTmpl = `{{ .From }} -> {{ .To }} [weight=1 label={{ printf "%q" .Side }}{{ if .Invisible }} style=invis{{ end }}] ;
`
