package main

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/tuneinsight/specfun/result"
	"gopkg.in/yaml.v3"
)

// number is a float64 whose JSON form of a non-finite value is the
// string "+Inf", "-Inf" or "NaN".
type number float64

func (n number) MarshalJSON() ([]byte, error) {
	if v := float64(n); math.IsInf(v, 0) || math.IsNaN(v) {
		return json.Marshal(formatFloat(v))
	}
	return json.Marshal(float64(n))
}

func (n *number) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("number: %w", err)
		}
		*n = number(v)
		return nil
	}
	return json.Unmarshal(b, (*float64)(n))
}

func numbers(v []float64) []number {
	if v == nil {
		return nil
	}
	out := make([]number, len(v))
	for i := range v {
		out[i] = number(v[i])
	}
	return out
}

// record is the output of one evaluation.
type record struct {
	Function string   `json:"function" yaml:"function"`
	Args     []number `json:"args" yaml:"args"`
	Value    number   `json:"value" yaml:"value"`
	Values   []number `json:"values,omitempty" yaml:"values,omitempty"`
	Status   string   `json:"status,omitempty" yaml:"status,omitempty"`
}

func encode(w io.Writer, format string, v interface{}) error {
	switch format {
	case formatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(v)
	case formatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(v); err != nil {
			return err
		}
		return encoder.Close()
	default:
		_, err := fmt.Fprintln(w, v)
		return err
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', 17, 64)
}

// emit writes the outcome of an evaluation according to the tier.
// The strict tier returns the evaluation error after writing the record.
func emit(w io.Writer, cfg config, fn string, args []float64, r result.Result) (err error) {

	rec := record{Function: fn, Args: numbers(args)}

	var v float64

	switch cfg.Tier {
	case tierStrict:
		v, err = result.Strict(fn, r)
		rec.Status = r.Status.String()
	case tierBestEffort:
		v = result.BestEffort(fn, r)
	default:
		v = r.Val
		rec.Status = r.Status.String()
	}

	rec.Value = number(v)

	if cfg.Format == formatText {
		line := formatFloat(v)
		if rec.Status != "" {
			line += " " + rec.Status
		}
		if _, werr := fmt.Fprintln(w, line); werr != nil {
			return werr
		}
		return
	}

	if werr := encode(w, cfg.Format, rec); werr != nil {
		return werr
	}

	return
}
