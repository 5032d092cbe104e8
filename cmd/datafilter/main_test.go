package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/cwbudde/algo-datafilter/filter"
)

const ramp = "x,y\n1,1\n2,1\n3,1\n4,1\n5,1\n6,1\n7,1\n8,1\n"

func TestRunCSV(t *testing.T) {
	var out bytes.Buffer
	cfg := config{kernel: "uniform", size: 3, mode: filter.ModeMirror, cols: []int{0}, header: true, format: "csv"}
	if err := run(strings.NewReader(ramp), &out, cfg); err != nil {
		t.Fatalf("run: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 9 {
		t.Fatalf("got %d lines, want 9:\n%s", len(lines), out.String())
	}
	if lines[0] != "x,y" {
		t.Errorf("header = %q", lines[0])
	}
	if lines[1] != "5,1" || lines[8] != "22,1" {
		t.Errorf("first/last rows = %q/%q, want 5,1 and 22,1", lines[1], lines[8])
	}
}

func TestRunOmitLeavesEdgesNaN(t *testing.T) {
	var out bytes.Buffer
	cfg := config{kernel: "uniform", size: 3, mode: filter.ModeOmit, header: true, format: "csv"}
	if err := run(strings.NewReader(ramp), &out, cfg); err != nil {
		t.Fatalf("run: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if lines[1] != "NaN,NaN" || lines[2] != "6,3" {
		t.Errorf("rows = %q, %q", lines[1], lines[2])
	}
}

func TestRunMedianTable(t *testing.T) {
	var out bytes.Buffer
	in := "1\n9\n\"\"\n3\n"
	cfg := config{kernel: "median", size: 3, mode: filter.ModeRepeat, format: "table"}
	if err := run(strings.NewReader(in), &out, cfg); err != nil {
		t.Fatalf("run: %v", err)
	}
	want := "col0\n----\n1\n5\n6\n3\n"
	if out.String() != want {
		t.Errorf("output =\n%s\nwant\n%s", out.String(), want)
	}
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		cfg  config
		want string
	}{
		{"unknown kernel", "1\n", config{kernel: "boxcar", size: 3, format: "csv"}, "unknown kernel"},
		{"bad number", "1\nx\n", config{kernel: "uniform", size: 3, format: "csv"}, "line 2"},
		{"empty", "", config{kernel: "uniform", size: 3, format: "csv"}, "empty input"},
		{"bad format", "1\n", config{kernel: "uniform", size: 3, format: "xml"}, "unknown format"},
		{"bad column", "1\n", config{kernel: "uniform", size: 3, cols: []int{4}, format: "csv"}, "out of range"},
		{"bad size", "1\n", config{kernel: "binomial", size: 0, format: "csv"}, "invalid size"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := run(strings.NewReader(tt.in), &bytes.Buffer{}, tt.cfg)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("err = %v, want mention of %q", err, tt.want)
			}
		})
	}
}

func TestParseColumns(t *testing.T) {
	cols, err := parseColumns(" 0, 2,5 ")
	if err != nil {
		t.Fatal(err)
	}
	if len(cols) != 3 || cols[0] != 0 || cols[1] != 2 || cols[2] != 5 {
		t.Errorf("cols = %v", cols)
	}
	if cols, err := parseColumns(""); err != nil || cols != nil {
		t.Errorf("empty = (%v, %v)", cols, err)
	}
	if _, err := parseColumns("1,a"); err == nil {
		t.Error("expected error for non-numeric column")
	}
}

func TestPrintList(t *testing.T) {
	var out bytes.Buffer
	printList(&out)
	s := out.String()
	for _, name := range []string{"binomial", "gaussian (uses -sigma)", "median"} {
		if !strings.Contains(s, name) {
			t.Errorf("list is missing %q:\n%s", name, s)
		}
	}
}
