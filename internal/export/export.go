// Package export writes trajectories as CSV or JSON.
package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/san-kum/popsim/internal/model"
)

// Data is the JSON export shape for one run.
type Data struct {
	Model    string      `json:"model"`
	Labels   []string    `json:"labels"`
	Dt       float64     `json:"dt"`
	TimeStep float64     `json:"time_step"`
	Points   int         `json:"points"`
	Times    []float64   `json:"times"`
	States   [][]float64 `json:"states"`
}

// WriteJSON encodes the trajectory as indented JSON.
func WriteJSON(w io.Writer, m model.Model, p model.Params, traj []model.Point) error {
	data := Data{
		Model:    string(m.Kind()),
		Labels:   m.Labels(),
		Dt:       p.Dt(),
		TimeStep: p.TimeStep(),
		Points:   len(traj),
		Times:    make([]float64, len(traj)),
		States:   make([][]float64, len(traj)),
	}
	for i, pt := range traj {
		data.Times[i] = pt.Time
		data.States[i] = pt.State
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

// WriteCSV writes a time column plus one column per population label.
func WriteCSV(w io.Writer, m model.Model, traj []model.Point) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := append([]string{"time"}, m.Labels()...)
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, pt := range traj {
		row := []string{strconv.FormatFloat(pt.Time, 'f', 6, 64)}
		for _, v := range pt.State {
			row = append(row, strconv.FormatFloat(v, 'f', 6, 64))
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	return cw.Error()
}
