package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/haot/internal/aero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const airIons = `time,Tt,Tv,N,O,NO,N2,O2,N+,O+,NO+,N2+,O2+,e+
1e-9,10000,300,0,0,0,0.012,0.0036,0,0,0,0,0,0
1e-8,9000,2000,1e-5,2e-5,3e-6,0.0119,0.0035,1e-9,2e-9,3e-9,4e-9,5e-9,1e-13
`

const pureN2 = `time,Tt,Tv,N,O,NO,N2,O2
0,5000,300,0,0,0,0.01,0
1e-7,4500,1500,1e-4,0,0,0.0099,0
`

const pureO2 = `time,Tt,Tv,N,O,NO,N2,O2
0,5000,300,0,0,0,0,0.01
`

func writeCSV(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoadAirWithIons(t *testing.T) {
	path := writeCSV(t, t.TempDir(), "11_Air_TC2.csv", airIons)

	d, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "11_Air_TC2", d.Name)
	assert.Equal(t, GasAir, d.GasType)
	assert.True(t, d.HasIons)
	assert.Equal(t, 2, d.Len())
	assert.Equal(t, []float64{10000, 9000}, d.TransRot)
	assert.Equal(t, []float64{300, 2000}, d.VibElec)
	assert.Equal(t, []float64{0, 1e-13}, d.Electrons)

	p := d.Densities()
	assert.Len(t, p.Species(), 10)
	assert.NotContains(t, p, aero.Electron)
	assert.Equal(t, 4e-9, p[aero.N2P][1])
	assert.Equal(t, 0.0035, p[aero.O2][1])
}

func TestLoadIonsWithoutElectrons(t *testing.T) {
	body := `time,Tt,Tv,N,O,NO,N2,O2,N+,O+,NO+,N2+,O2+
1e-8,9000,2000,1e-5,2e-5,3e-6,0.0119,0.0035,1e-9,2e-9,3e-9,4e-9,5e-9
`
	d, err := Load(writeCSV(t, t.TempDir(), "air_no_electrons.csv", body))
	require.NoError(t, err)
	assert.True(t, d.HasIons)
	assert.Nil(t, d.Electrons)

	p := d.Densities()
	assert.Len(t, p.Species(), 10)
	assert.Equal(t, 5e-9, p[aero.O2P][0])
	assert.Equal(t, []string{aero.NP, aero.N2P, aero.NOP, aero.OP, aero.O2P}, p.Ions().Species())
}

func TestLoadPureGas(t *testing.T) {
	dir := t.TempDir()

	d, err := Load(writeCSV(t, dir, "5_N2.csv", pureN2))
	require.NoError(t, err)
	assert.Equal(t, GasN2, d.GasType)
	assert.False(t, d.HasIons)
	assert.Nil(t, d.Electrons)
	assert.Equal(t, []string{aero.N, aero.N2}, d.Densities().Species())

	d, err = Load(writeCSV(t, dir, "5_O2.csv", pureO2))
	require.NoError(t, err)
	assert.Equal(t, GasO2, d.GasType)
	assert.Equal(t, []string{aero.O, aero.O2}, d.Densities().Species())
}

func TestDensitiesIsACopy(t *testing.T) {
	d, err := Load(writeCSV(t, t.TempDir(), "n2.csv", pureN2))
	require.NoError(t, err)

	p := d.Densities()
	p[aero.N2][0] = -1
	assert.Equal(t, 0.01, d.Densities()[aero.N2][0])
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.csv"))
	assert.Error(t, err)

	_, err = Load(writeCSV(t, dir, "empty.csv", "time,Tt,Tv,N,O,NO,N2,O2\n"))
	assert.ErrorContains(t, err, "no samples")

	_, err = Load(writeCSV(t, dir, "partial.csv", "time,Tt,Tv,N,O,NO,N2,O2,N+,e+\n0,1,1,0,0,0,1,1,0,0\n"))
	assert.ErrorContains(t, err, "missing ion columns N2+, NO+, O+, O2+")

	_, err = Load(writeCSV(t, dir, "electrons.csv", "time,Tt,Tv,N,O,NO,N2,O2,e+\n0,1,1,0,0,0,1,1,0\n"))
	assert.ErrorContains(t, err, "e+ column without ion columns")
}

func TestLoadAll(t *testing.T) {
	dir := t.TempDir()
	writeCSV(t, dir, "b.csv", pureO2)
	writeCSV(t, dir, "a.csv", pureN2)
	writeCSV(t, dir, "notes.txt", "ignored")

	all, err := LoadAll(dir, nil)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "a", all[0].Name)
	assert.Equal(t, "b", all[1].Name)

	some, err := LoadAll(dir, []string{"b"})
	require.NoError(t, err)
	require.Len(t, some, 1)
	assert.Equal(t, GasO2, some[0].GasType)
}
