// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"io"
	"math"

	"github.com/katalvlaran/armkin/arm"
	"github.com/katalvlaran/armkin/matrix"
)

// linksEcho repeats the requested geometry in every JSON payload. Lengths
// go through jsonNumber so a NaN request still encodes.
type linksEcho struct {
	Link1    any `json:"link1"`
	Link1Min int `json:"link1_min"`
	Link1Max int `json:"link1_max"`
	Link2    any `json:"link2"`
	Link2Min int `json:"link2_min"`
	Link2Max int `json:"link2_max"`
	Link3    any `json:"link3"`
	Link3Min int `json:"link3_min"`
	Link3Max int `json:"link3_max"`
	Link4    any `json:"link4"`
	Link4Min int `json:"link4_min"`
	Link4Max int `json:"link4_max"`
	Link5    any `json:"link5"`
	Link5Min int `json:"link5_min"`
	Link5Max int `json:"link5_max"`
}

func echoLinks(l [arm.NumLinks]arm.Link) linksEcho {
	return linksEcho{
		Link1: jsonNumber(l[0].Length), Link1Min: l[0].Min, Link1Max: l[0].Max,
		Link2: jsonNumber(l[1].Length), Link2Min: l[1].Min, Link2Max: l[1].Max,
		Link3: jsonNumber(l[2].Length), Link3Min: l[2].Min, Link3Max: l[2].Max,
		Link4: jsonNumber(l[3].Length), Link4Min: l[3].Min, Link4Max: l[3].Max,
		Link5: jsonNumber(l[4].Length), Link5Min: l[4].Min, Link5Max: l[4].Max,
	}
}

// fkPayload is the forward result.
type fkPayload struct {
	linksEcho
	Theta1     float64 `json:"theta1"`
	Theta2     float64 `json:"theta2"`
	Theta3     float64 `json:"theta3"`
	Theta4     float64 `json:"theta4"`
	StatusCalc string  `json:"status_calc"`
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Z          float64 `json:"z"`
	Alpha      float64 `json:"alpha"`
}

// ikPayload is the inverse result with both gated configurations.
type ikPayload struct {
	linksEcho
	X       int     `json:"x"`
	Y       int     `json:"y"`
	Z       int     `json:"z"`
	Alpha   int     `json:"alpha"`
	Status  string  `json:"status_calc"`
	Config1 string  `json:"Config1"`
	Theta1  float64 `json:"theta1"`
	Theta2  float64 `json:"theta2"`
	Theta3  float64 `json:"theta3"`
	Theta4  float64 `json:"theta4"`
	Config2 string  `json:"Config2"`
	Theta11 float64 `json:"theta11"`
	Theta22 float64 `json:"theta22"`
	Theta33 float64 `json:"theta33"`
	Theta44 float64 `json:"theta44"`
}

// dhPayload is the DH table in degrees with its status. Undefined entries
// encode as null.
type dhPayload struct {
	Status string        `json:"status"`
	Rows   [][]any       `json:"rows"`
	Frame  *framePayload `json:"frame,omitempty"`
}

// framePayload splits a homogeneous transform into its rotation block and
// translation column.
type framePayload struct {
	Rotation    [][]any `json:"rotation"`
	Translation []any   `json:"translation"`
}

func newFramePayload(T matrix.Matrix) (*framePayload, error) {
	R, err := matrix.Rotation(T)
	if err != nil {
		return nil, err
	}
	p, err := matrix.Translation(T)
	if err != nil {
		return nil, err
	}
	f := &framePayload{Rotation: make([][]any, 3), Translation: make([]any, 3)}
	for i := 0; i < 3; i++ {
		f.Rotation[i] = []any{jsonNumber(R[i][0]), jsonNumber(R[i][1]), jsonNumber(R[i][2])}
		f.Translation[i] = jsonNumber(p[i])
	}

	return f, nil
}

// jsonNumber maps NaN and ±Inf to nil; encoding/json rejects them.
func jsonNumber(v float64) any {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}

	return v
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}
