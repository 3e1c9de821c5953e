package report

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
)

// Value is one computed quantity of the worksheet.
type Value struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
	Unit  string  `json:"unit,omitempty"`
}

// Section groups the values of one calculation, in worksheet order.
type Section struct {
	Title  string  `json:"title"`
	Values []Value `json:"values"`
}

// Reporter renders a finished worksheet.
type Reporter interface {
	Report(sections []Section) error
}

// MultiReporter fans a worksheet out to multiple destinations.
type MultiReporter []Reporter

// Report renders on every reporter and returns the first error.
func (m MultiReporter) Report(sections []Section) error {
	for _, r := range m {
		if err := r.Report(sections); err != nil {
			return err
		}
	}
	return nil
}

// TextReporter writes the worksheet as aligned plain text.
type TextReporter struct {
	W io.Writer
}

func (r TextReporter) Report(sections []Section) error {
	tw := tabwriter.NewWriter(r.W, 2, 4, 2, ' ', 0)
	for i, s := range sections {
		if i > 0 {
			fmt.Fprintln(tw)
		}
		fmt.Fprintf(tw, "%s\n", s.Title)
		for _, v := range s.Values {
			fmt.Fprintf(tw, "  %s\t%s\t%s\n", v.Name, formatValue(v.Value), v.Unit)
		}
	}
	return tw.Flush()
}

// formatValue keeps small currents and large ratios both readable.
func formatValue(v float64) string {
	av := v
	if av < 0 {
		av = -av
	}
	if av != 0 && (av < 1e-3 || av >= 1e6) {
		return fmt.Sprintf("%.4g", v)
	}
	return fmt.Sprintf("%.4f", v)
}

// JSONReporter writes the worksheet as one indented JSON document.
type JSONReporter struct {
	W io.Writer
}

func (r JSONReporter) Report(sections []Section) error {
	enc := json.NewEncoder(r.W)
	enc.SetIndent("", "  ")
	return enc.Encode(struct {
		Sections []Section `json:"sections"`
	}{sections})
}
