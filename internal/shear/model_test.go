package shear_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wcfrobert/wthisj/internal/shear"
)

func writeModel(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "model.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadModelRoundTrip(t *testing.T) {
	path := writeModel(t, `{
		"name": "interior test column",
		"width": 24, "height": 24, "slab_depth": 12,
		"condition": "I",
		"load": {"p": -100, "mx": 400, "gamma_vx": "auto", "gamma_vy": 0.4}
	}`)

	m, err := shear.LoadModel(path)
	require.NoError(t, err)
	require.Equal(t, "interior test column", m.Name)
	require.Equal(t, shear.Interior, m.Condition)
	require.NotNil(t, m.Load)
	require.True(t, m.Load.GammaVx.IsAuto())
	require.False(t, m.Load.GammaVy.IsAuto())

	s, err := m.Build()
	require.NoError(t, err)
	res, err := s.Solve(*m.Load)
	require.NoError(t, err)
	require.InDelta(t, 0.4, res.GammaVx, 1e-12)
	require.InDelta(t, 0.4, res.GammaVy, 1e-12)
	require.True(t, res.Equilibrium.Balanced)
}

func TestLoadModelManualPerimeter(t *testing.T) {
	path := writeModel(t, `{
		"width": 24, "height": 24, "slab_depth": 12,
		"manual_perimeter": true,
		"perimeter": [
			{"start": [0, 0], "end": [0, 10], "depth": 1},
			{"start": [5, 0], "end": [5, 10]}
		]
	}`)

	m, err := shear.LoadModel(path)
	require.NoError(t, err)

	s, err := m.Build()
	require.NoError(t, err)
	segs := s.Segments()
	require.Len(t, segs, 2)
	require.Equal(t, 1.0, segs[0].Depth)
	// omitted depth inherits the slab depth
	require.Equal(t, 12.0, segs[1].Depth)
}

func TestLoadModelManualPerimeterWithoutSegments(t *testing.T) {
	path := writeModel(t, `{
		"width": 24, "height": 24, "slab_depth": 12,
		"manual_perimeter": true
	}`)

	_, err := shear.LoadModel(path)
	var cerr *shear.ConfigError
	require.ErrorAs(t, err, &cerr)
}

func TestLoadModelOpeningsAndRotation(t *testing.T) {
	path := writeModel(t, `{
		"width": 24, "height": 24, "slab_depth": 12,
		"condition": "I",
		"openings": [{"dx": 20, "dy": -6, "width": 12, "height": 12}],
		"rotation": 15
	}`)

	m, err := shear.LoadModel(path)
	require.NoError(t, err)

	s, err := m.Build()
	require.NoError(t, err)
	require.Len(t, s.Openings(), 1)

	props, err := s.Properties()
	require.NoError(t, err)
	require.Less(t, props.Bo, 144.0)
}

func TestGammaJSON(t *testing.T) {
	var g shear.Gamma
	require.NoError(t, json.Unmarshal([]byte(`"auto"`), &g))
	require.True(t, g.IsAuto())

	require.NoError(t, json.Unmarshal([]byte(`0.45`), &g))
	require.False(t, g.IsAuto())

	require.Error(t, json.Unmarshal([]byte(`"0.45x"`), &g))

	out, err := json.Marshal(shear.AutoGamma())
	require.NoError(t, err)
	require.JSONEq(t, `"auto"`, string(out))

	out, err = json.Marshal(shear.FixedGamma(0.4))
	require.NoError(t, err)
	require.JSONEq(t, `0.4`, string(out))
}

func TestLoadModelMissingFile(t *testing.T) {
	_, err := shear.LoadModel(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
}
