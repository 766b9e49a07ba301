package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// WriteJSON encodes r as indented JSON.
func WriteJSON(w io.Writer, r any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(r)
}

// WriteText renders r as aligned sections for a terminal.
func WriteText(w io.Writer, r *Report) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	kind := "undirected"
	if r.Summary.Directed {
		kind = "directed"
	}
	fmt.Fprintf(tw, "Graph\t%s, %d vertices, %d edges, %d isolated, %d components\n",
		kind, r.Summary.Vertices, r.Summary.Edges, r.Summary.Isolated, r.Summary.Components)

	section(tw, "Closeness centrality")
	for _, s := range r.Closeness {
		fmt.Fprintf(tw, "  %s\t%.6f\n", s.Vertex, s.Value)
	}
	section(tw, "Eccentricity")
	for _, s := range r.Eccentricity {
		fmt.Fprintf(tw, "  %s\t%s\n", s.Vertex, s.Hops)
	}
	section(tw, "Betweenness centrality")
	for _, s := range r.Betweenness {
		fmt.Fprintf(tw, "  %s\t%.6f\n", s.Vertex, s.Value)
	}
	title := "Eigenvector centrality"
	if !r.EigenvectorConverged {
		title += " (not converged)"
	}
	section(tw, title)
	for _, s := range r.Eigenvector {
		fmt.Fprintf(tw, "  %s\t%.6f\n", s.Vertex, s.Value)
	}
	section(tw, "Clustering coefficient")
	for _, s := range r.Clustering {
		fmt.Fprintf(tw, "  %s\t%.6f\n", s.Vertex, s.Value)
	}

	fmt.Fprintln(tw)
	fmt.Fprintf(tw, "Average clustering coefficient\t%.6f\n", r.AverageClustering)
	fmt.Fprintf(tw, "Average shortest path length\t%.6f\n", r.AverageShortestPathLength)

	section(tw, "Degree distribution")
	for _, b := range r.DegreeHistogram {
		fmt.Fprintf(tw, "  %d\t%d\t%s\n", b.Degree, b.Count, strings.Repeat("#", b.Count))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	for i := range r.Paths {
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
		if err := WritePath(w, &r.Paths[i]); err != nil {
			return err
		}
	}

	return nil
}

// WritePath renders a single path query.
func WritePath(w io.Writer, p *PathResult) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "Path %s → %s\n", p.From, p.To)
	if p.Shortest == nil {
		fmt.Fprintf(tw, "  shortest\tno path\n")
	} else {
		fmt.Fprintf(tw, "  shortest\t%s\t(%s hops)\n", strings.Join(p.Shortest, " → "), p.Hops)
	}
	if p.All != nil {
		label := fmt.Sprintf("all simple paths (%d)", len(p.All))
		if p.Truncated {
			label = fmt.Sprintf("all simple paths (first %d, truncated)", len(p.All))
		}
		fmt.Fprintf(tw, "  %s\n", label)
		for _, path := range p.All {
			fmt.Fprintf(tw, "    %s\n", strings.Join(path, " → "))
		}
	}

	return tw.Flush()
}

func section(w io.Writer, title string) {
	fmt.Fprintf(w, "\n%s\n", title)
}
