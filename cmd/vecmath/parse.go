package main

import (
	"strconv"
	"strings"

	"github.com/QYUbit/sarsim/pkg/vector"
	"github.com/pkg/errors"
)

// parseVector reads a vector written as "x,y".
func parseVector(s string) (vector.Vector2D, error) {
	parts := strings.Split(s, ",")
	comps := make([]float64, 0, len(parts))
	for _, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return vector.Vector2D{}, errors.Wrapf(err, "parse vector %q", s)
		}
		comps = append(comps, f)
	}
	v, err := vector.FromView(comps)
	if err != nil {
		return vector.Vector2D{}, errors.Wrapf(err, "parse vector %q", s)
	}
	return v, nil
}

func parseVectors(args []string) ([]vector.Vector2D, error) {
	vs := make([]vector.Vector2D, len(args))
	for i, a := range args {
		v, err := parseVector(a)
		if err != nil {
			return nil, err
		}
		vs[i] = v
	}
	return vs, nil
}
