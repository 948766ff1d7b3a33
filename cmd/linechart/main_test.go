// seehuhn.de/go/linechart - line chart layout and geometry
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func runCmd(t *testing.T, args ...string) string {
	t.Helper()
	dir := t.TempDir()
	data := filepath.Join(dir, "data.csv")
	if err := os.WriteFile(data, []byte("day,n\nMon,1\nTue,\nWed,3\nThu,2\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	base := []string{"--csv", data, "--column", "n", "--labels", "day", "--config", filepath.Join(dir, "none.toml")}
	cmd.SetArgs(append(args, base...))
	if err := cmd.Execute(); err != nil {
		t.Fatalf("%v: %v\n%s", args, err, out.String())
	}
	return out.String()
}

func TestStatsCmd(t *testing.T) {
	out := runCmd(t, "stats")
	for _, want := range []string{
		"3 of 4 values present",
		"average            2\n",
		"maximum            3\n",
		"trapezoidal",
		"correlation",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output lacks %q:\n%s", want, out)
		}
	}
}

func TestLayoutCmd(t *testing.T) {
	out := runCmd(t, "layout", "--width", "300", "--height", "200", "--x-axis")
	if !strings.Contains(out, `"state": "chart"`) || !strings.Contains(out, `"width": 300`) {
		t.Errorf("unexpected layout:\n%s", out)
	}
	if !strings.Contains(out, `"text": "Mon"`) {
		t.Errorf("X labels missing:\n%s", out)
	}
}

func TestTouchCmd(t *testing.T) {
	out := runCmd(t, "touch", "--x", "1000", "--width", "300", "--height", "200")
	if !strings.HasPrefix(out, "index 3 (Thu): 2 at") {
		t.Errorf("unexpected touch report:\n%s", out)
	}
}

func TestRenderCmd(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "chart.png")
	runCmd(t, "render", "--out", fname, "--width", "120", "--height", "80")
	if fi, err := os.Stat(fname); err != nil || fi.Size() == 0 {
		t.Errorf("no image written: %v", err)
	}
}

func TestMultipleInputs(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"stats", "--csv", "a.csv", "--sqlite", "b.db", "--config", filepath.Join(t.TempDir(), "x.toml")})
	if err := cmd.Execute(); err == nil {
		t.Error("conflicting inputs accepted")
	}
}
