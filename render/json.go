package render

import (
	"io"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// dataJSON is the wire form of Data; codes are numeric rows.
type dataJSON struct {
	Tolerance      int     `json:"tolerance"`
	Feasible       bool    `json:"found"`
	Width          int     `json:"width"`
	Score          float64 `json:"score"`
	ViolationCount int     `json:"violations"`
	OverBudget     bool    `json:"over_budget"`
	Summary        string  `json:"summary"`
	Grid           [][]int `json:"grid"`
}

func (d Data) wire() dataJSON {
	rows := make([][]int, d.Rows)
	for y := range rows {
		row := make([]int, d.Cols)
		for x := range row {
			row[x] = int(d.At(x, y))
		}
		rows[y] = row
	}
	return dataJSON{
		Tolerance:      d.Tolerance,
		Feasible:       d.Feasible,
		Width:          d.Width,
		Score:          d.Score,
		ViolationCount: d.ViolationCount,
		OverBudget:     d.OverBudget(),
		Summary:        d.Summary(),
		Grid:           rows,
	}
}

// MarshalJSON encodes d with numeric code rows.
func (d Data) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.wire())
}

// WriteJSON streams every entry of data to w as a JSON array.
func WriteJSON(w io.Writer, data []Data) error {
	wires := make([]dataJSON, len(data))
	for i, d := range data {
		wires[i] = d.wire()
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(wires)
}
