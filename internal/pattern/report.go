package pattern

import (
	"encoding/json"
	"fmt"
	"io"
)

// Report is the machine-readable summary of a pattern.
type Report struct {
	Width   int           `json:"width"`
	Height  int           `json:"height"`
	DPI     int           `json:"dpi"`
	SizeCm  [2]float64    `json:"size_cm"`
	Flosses []ReportFloss `json:"flosses"`
}

// ReportFloss is one floss of a Report.
type ReportFloss struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Hex    string `json:"hex"`
	Symbol string `json:"symbol"`
	Count  int    `json:"count"`
}

// Report summarizes r. SizeCm is the printed size of the framed grid.
func (r *Result) Report() Report {
	w, h := r.Geometry.GridSize(r.Columns(), r.Rows())
	rep := Report{
		Width:   r.Columns(),
		Height:  r.Rows(),
		DPI:     r.Geometry.DPI,
		SizeCm:  [2]float64{r.Geometry.Centimeters(w), r.Geometry.Centimeters(h)},
		Flosses: make([]ReportFloss, 0, len(r.Entries)),
	}
	for _, e := range r.Entries {
		rep.Flosses = append(rep.Flosses, ReportFloss{
			ID:     e.Floss.ID,
			Name:   e.Floss.Name,
			Hex:    e.Floss.Color.Hex(),
			Symbol: Symbol(e.Floss.Color),
			Count:  e.Count,
		})
	}
	return rep
}

// WriteJSON writes the report as indented JSON.
func (rep Report) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rep); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return nil
}
