package muskingum

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/muskingum/network"
)

// fixture mirrors the on-disk YAML layout of a PRMS-style parameter file,
// trimmed to the fields this engine consumes plus the reserved ones it
// merely stores. Field names follow the parameter file's own snake_case
// convention rather than Go's exported-field convention, since they are a
// direct wire format, not a Go API.
type fixture struct {
	Nhru     int `yaml:"nhru"`
	Nssr     int `yaml:"nssr"`
	Ngw      int `yaml:"ngw"`
	Nsegment int `yaml:"nsegment"`

	HruArea    []float64 `yaml:"hru_area"`
	HruSegment []int32   `yaml:"hru_segment"`

	MannN       []float64 `yaml:"mann_n"`
	SegDepth    []float64 `yaml:"seg_depth"`
	SegLength   []float64 `yaml:"seg_length"`
	SegSlope    []float64 `yaml:"seg_slope"`
	SegmentType []int     `yaml:"segment_type"`

	ToSegment       []int32   `yaml:"tosegment"`
	ToSegmentNhm    []int32   `yaml:"tosegment_nhm"`
	XCoef           []float64 `yaml:"x_coef"`
	SegmentFlowInit []float64 `yaml:"segment_flow_init"`

	ObsinSegment  []int32 `yaml:"obsin_segment"`
	ObsoutSegment []int32 `yaml:"obsout_segment"`
}

// LoadParamsYAML reads a PRMS-style parameter fixture from path and
// converts it to Params. This is the only file-I/O surface this module
// offers; reading/writing forcing data and orchestrating the enclosing
// simulation loop remain external collaborators, per design.
func LoadParamsYAML(path string) (Params, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Params{}, fmt.Errorf("muskingum: read fixture: %w", err)
	}

	var f fixture
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return Params{}, fmt.Errorf("muskingum: parse fixture: %w", err)
	}

	segTypes := make([]network.SegmentType, len(f.SegmentType))
	for i, v := range f.SegmentType {
		segTypes[i] = network.SegmentType(v)
	}

	return Params{
		Nhru:            f.Nhru,
		Nssr:            f.Nssr,
		Ngw:             f.Ngw,
		Nsegment:        f.Nsegment,
		HruArea:         f.HruArea,
		HruSegment:      f.HruSegment,
		MannN:           f.MannN,
		SegDepth:        f.SegDepth,
		SegLength:       f.SegLength,
		SegSlope:        f.SegSlope,
		SegmentType:     segTypes,
		ToSegment:       f.ToSegment,
		ToSegmentNhm:    f.ToSegmentNhm,
		XCoef:           f.XCoef,
		SegmentFlowInit: f.SegmentFlowInit,
		ObsinSegment:    f.ObsinSegment,
		ObsoutSegment:   f.ObsoutSegment,
	}, nil
}
