// Package report builds the function to system-register access graph.
package report

import (
	"fmt"

	"github.com/zboralski/lattice"
	"github.com/zboralski/lattice/render"

	"sysmark/internal/annotate"
	"sysmark/internal/elfx"
)

// BuildAccessGraph links functions to the registers and operations they
// touch. Functions are callers, register names callees; reads and writes
// both count. Accesses outside any known function land on a loc_<addr>
// node.
func BuildAccessGraph(table *elfx.SymbolTable, anns []annotate.Annotation) *lattice.Graph {
	g := &lattice.Graph{}
	seen := make(map[string]bool)
	for _, a := range anns {
		if a.Register == "" {
			continue
		}
		caller := fmt.Sprintf("loc_%x", a.Addr)
		if table != nil {
			if s, ok := table.Enclosing(a.Addr); ok {
				caller = s.Name
			}
		}
		if !seen[caller] {
			seen[caller] = true
			g.Nodes = append(g.Nodes, caller)
		}
		if !seen[a.Register] {
			seen[a.Register] = true
			g.Nodes = append(g.Nodes, a.Register)
		}
		g.Edges = append(g.Edges, lattice.Edge{
			Caller: caller,
			Callee: a.Register,
		})
	}
	g.Dedup()
	return g
}

// DOT renders the access graph for graphviz.
func DOT(g *lattice.Graph, title string) string {
	return render.DOT(g, title)
}
