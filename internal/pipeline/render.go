package pipeline

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/ppiankov/cardex/internal/model"
)

// Renderer writes parse results as JSON, field lines or a line explanation
type Renderer struct{}

// NewRenderer creates a renderer
func NewRenderer() *Renderer {
	return &Renderer{}
}

// RenderJSON writes the result as indented JSON
func (r *Renderer) RenderJSON(w io.Writer, res *Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(res); err != nil {
		return fmt.Errorf("encode JSON: %w", err)
	}
	return nil
}

// RenderText writes one field per line. Values are not escaped.
func (r *Renderer) RenderText(w io.Writer, rec *model.ContactRecord) error {
	var b strings.Builder

	if rec.FullName != "" {
		fmt.Fprintf(&b, "FN:%s\n", rec.FullName)
	}
	if !rec.Name.IsZero() {
		n := rec.Name
		fmt.Fprintf(&b, "N:%s;%s;%s;%s;%s\n", n.Family, n.Given, n.Middle, n.Prefix, n.Suffix)
	}
	if rec.Organization != "" {
		fmt.Fprintf(&b, "ORG:%s\n", rec.Organization)
	}
	if rec.Title != "" {
		fmt.Fprintf(&b, "TITLE:%s\n", rec.Title)
	}
	for _, a := range rec.Addresses {
		fmt.Fprintf(&b, "ADR;TYPE=%s:%s;%s;%s;%s;%s;%s;%s\n",
			a.Type, a.POBox, a.Extended, a.Street, a.City, a.Region, a.PostalCode, a.Country)
	}
	for _, p := range rec.Phones {
		fmt.Fprintf(&b, "TEL;TYPE=%s:%s\n", p.Type, p.Value)
	}
	for _, e := range rec.Emails {
		fmt.Fprintf(&b, "EMAIL;TYPE=%s:%s\n", e.Type, e.Value)
	}
	for _, u := range rec.URLs {
		fmt.Fprintf(&b, "URL;TYPE=%s:%s\n", u.Type, u.Value)
	}
	if len(rec.Notes) > 0 {
		fmt.Fprintf(&b, "NOTE:%s\n", strings.Join(rec.Notes, "; "))
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("write record: %w", err)
	}
	return nil
}

// RenderExplain writes every line with its claim tag and anchors
func (r *Renderer) RenderExplain(w io.Writer, lines []model.Line) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tTAG\tTEXT\tANCHORS")
	for _, l := range lines {
		tag := l.Tag.String()
		if tag == "" {
			tag = "-"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", l.Index, tag, l.Text, formatAnchors(l.Anchors))
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("write explanation: %w", err)
	}
	return nil
}

func formatAnchors(anchors []model.AnchorMatch) string {
	parts := make([]string, 0, len(anchors))
	for _, a := range anchors {
		parts = append(parts, fmt.Sprintf("%s(%s)@%d", a.Type, a.Value, a.Start))
	}
	return strings.Join(parts, " ")
}
