// Command export writes the layouts of all test cases to JSON, for
// comparison against other chart implementations.
// Run from the linechart module root directory.
package main

import (
	"encoding/json"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/linechart/export"
	"seehuhn.de/go/linechart/testcases"
)

func main() {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			out.TestCases = append(out.TestCases, toJSON(category, tc))
		}
	}

	f, err := os.Create("testdata/layouts.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name   string            `json:"name"`
	Values []*float64        `json:"values"`
	Labels []string          `json:"labels,omitempty"`
	Width  float64           `json:"width"`
	Height float64           `json:"height"`
	Curve  string            `json:"curve"`
	Layout export.JSONLayout `json:"layout"`
}

func toJSON(category string, tc testcases.TestCase) jsonTestCase {
	jtc := jsonTestCase{
		Name:   category + "_" + tc.Name,
		Labels: tc.Labels,
		Width:  tc.Width,
		Height: tc.Height,
		Curve:  tc.Options.Curve.String(),
		Layout: export.ToJSON(tc.Layout()),
	}
	for _, v := range tc.Values {
		if x, ok := v.Get(); ok {
			jtc.Values = append(jtc.Values, &x)
		} else {
			jtc.Values = append(jtc.Values, nil)
		}
	}
	return jtc
}
