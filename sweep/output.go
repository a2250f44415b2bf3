package sweep

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/wcharczuk/go-chart/v2"

	"sputtering/constants"
)

// Stats summarizes the yields of one model over a sweep.
type Stats struct {
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
	Mean float64 `json:"mean"`
}

// Summary compares both models over a sweep.
type Summary struct {
	Points  int   `json:"points"`
	Sigmund Stats `json:"sigmund"`
	Zalm    Stats `json:"zalm"`

	// Range of the Sigmund/Zalm yield ratio.
	RatioMin float64 `json:"ratio_min"`
	RatioMax float64 `json:"ratio_max"`
}

// Summary returns per model statistics. All fields are zero for an empty
// sweep.
func (res Results) Summary() Summary {
	sum := Summary{Points: len(res.Points)}
	if len(res.Points) == 0 {
		return sum
	}
	sum.Sigmund = Stats{Min: math.Inf(1), Max: math.Inf(-1)}
	sum.Zalm = Stats{Min: math.Inf(1), Max: math.Inf(-1)}
	sum.RatioMin, sum.RatioMax = math.Inf(1), math.Inf(-1)

	for _, pt := range res.Points {
		sum.Sigmund.add(pt.Sigmund)
		sum.Zalm.add(pt.Zalm)
		r := pt.Sigmund / pt.Zalm
		sum.RatioMin = math.Min(sum.RatioMin, r)
		sum.RatioMax = math.Max(sum.RatioMax, r)
	}
	sum.Sigmund.Mean /= float64(len(res.Points))
	sum.Zalm.Mean /= float64(len(res.Points))
	return sum
}

// add accumulates v; Mean holds the running sum until divided.
func (s *Stats) add(v float64) {
	s.Min = math.Min(s.Min, v)
	s.Max = math.Max(s.Max, v)
	s.Mean += v
}

// WriteJSON writes the results as indented JSON.
func (res Results) WriteJSON(w io.Writer) error {
	data, err := json.MarshalIndent(res, "", " ")
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// SaveJSON saves the results to a .json file.
func (res Results) SaveJSON(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := res.WriteJSON(f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}

// Chart returns a line chart of yield against incident energy in keV with
// one series per model.
func (res Results) Chart() (chart.Chart, error) {
	if len(res.Points) < 2 {
		return chart.Chart{}, errors.New("chart needs at least two points")
	}
	xs := make([]float64, len(res.Points))
	sig := make([]float64, len(res.Points))
	zal := make([]float64, len(res.Points))
	for i, pt := range res.Points {
		xs[i] = pt.Energy / constants.KeV
		sig[i] = pt.Sigmund
		zal[i] = pt.Zalm
	}

	graph := chart.Chart{
		Title: fmt.Sprintf("%s on %s", res.Params.Projectile, res.Params.Target.Species),
		Background: chart.Style{
			Padding: chart.Box{
				Top:  50,
				Left: 20,
			},
		},
		Width:  1280,
		Height: 720,
		XAxis: chart.XAxis{
			Name: "Incident Energy [keV]",
		},
		YAxis: chart.YAxis{
			Name: "Yield",
		},
		Series: []chart.Series{
			chart.ContinuousSeries{Name: "Sigmund", XValues: xs, YValues: sig},
			chart.ContinuousSeries{Name: "Zalm", XValues: xs, YValues: zal},
		},
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}
	return graph, nil
}

// WriteChart renders the chart as PNG to w.
func (res Results) WriteChart(w io.Writer) error {
	graph, err := res.Chart()
	if err != nil {
		return err
	}
	return graph.Render(chart.PNG, w)
}

// SaveChart saves the chart to a .png file.
func (res Results) SaveChart(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := res.WriteChart(f); err != nil {
		f.Close()
		return fmt.Errorf("render %s: %w", path, err)
	}
	return f.Close()
}
