// Command export writes the chart scenarios and their placement results
// to testdata/scenarios.json, for comparison with other implementations.
package main

import (
	"encoding/json"
	"log"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/legend"
	"seehuhn.de/go/legend/canvas"
	"seehuhn.de/go/legend/testcases"
)

func main() {
	var out struct {
		Scenarios []jsonScenario `json:"scenarios"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			js, err := export(category, tc)
			if err != nil {
				log.Fatalf("%s_%s: %v", category, tc.Name, err)
			}
			out.Scenarios = append(out.Scenarios, js)
		}
	}

	if err := os.MkdirAll("testdata", 0o755); err != nil {
		log.Fatal(err)
	}
	f, err := os.Create("testdata/scenarios.json")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		log.Fatal(err)
	}
}

type jsonScenario struct {
	Name   string       `json:"name"`
	Legend [2]float64   `json:"legend_size"`
	Series []jsonSeries `json:"series"`
	Result jsonResult   `json:"result"`
}

type jsonSeries struct {
	Label  string       `json:"label"`
	Kind   string       `json:"kind"`
	Points [][2]float64 `json:"points"`
}

type jsonResult struct {
	State       string     `json:"state"`
	Anchor      string     `json:"anchor"`
	Failed      bool       `json:"failed"`
	Box         [4]float64 `json:"box"`
	XRange      [2]float64 `json:"x_range"`
	YRange      [2]float64 `json:"y_range"`
	Attempts    int        `json:"attempts"`
	Evaluations int        `json:"evaluations"`
}

func export(category string, tc testcases.Case) (jsonScenario, error) {
	js := jsonScenario{
		Name:   category + "_" + tc.Name,
		Legend: [2]float64{tc.Width, tc.Height},
	}
	for _, in := range tc.Series {
		s := jsonSeries{Label: in.Label, Kind: in.Series.Kind().String()}
		for _, p := range in.Series.SamplePoints() {
			s.Points = append(s.Points, [2]float64{p.X, p.Y})
		}
		js.Series = append(js.Series, s)
	}

	ch, err := tc.Chart()
	if err != nil {
		return js, err
	}
	c, err := canvas.New(600, 450, legend.DefaultMargins)
	if err != nil {
		return js, err
	}
	res, err := ch.Draw(c)
	if err != nil {
		return js, err
	}
	b := res.Box.Rect
	js.Result = jsonResult{
		State:       res.State.String(),
		Anchor:      res.Anchor.String(),
		Failed:      res.Failed,
		Box:         [4]float64{b.LLx, b.LLy, b.URx, b.URy},
		XRange:      [2]float64{res.Range.X.Min, res.Range.X.Max},
		YRange:      [2]float64{res.Range.Y.Min, res.Range.Y.Max},
		Attempts:    res.Attempts,
		Evaluations: res.Evaluations,
	}
	return js, nil
}
