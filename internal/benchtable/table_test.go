package benchtable

import (
	"bytes"
	"strings"
	"testing"

	"github.com/banshee-data/evaltools/internal/testutil"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadCSV(t *testing.T) {
	tbl, err := ReadCSV(strings.NewReader(testutil.BenchmarkCSV))
	require.NoError(t, err)

	assert.Equal(t, []string{"algorithm", "points", "cores", "ns/op"}, tbl.Columns)
	require.Len(t, tbl.Rows, 6)
	assert.Equal(t, []string{"2", "40", "4", "3300"}, tbl.Rows[5])
}

func TestReadCSVErrors(t *testing.T) {
	_, err := ReadCSV(strings.NewReader(""))
	assert.ErrorIs(t, err, ErrEmpty)

	_, err = ReadCSV(strings.NewReader("x,y\n1,2\n3\n"))
	assert.Error(t, err)
}

func TestColumnIndex(t *testing.T) {
	tbl := &Table{Columns: []string{"x", "y"}}

	idx, err := tbl.ColumnIndex("y")
	require.NoError(t, err)
	assert.Equal(t, 1, idx)

	_, err = tbl.ColumnIndex("z")
	assert.ErrorIs(t, err, ErrUnknownColumn)
}

func TestWriteCSVRoundTrip(t *testing.T) {
	tbl, err := ReadCSV(strings.NewReader(testutil.BenchmarkCSV))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, tbl.WriteCSV(&buf))

	again, err := ReadCSV(&buf)
	require.NoError(t, err)
	if diff := cmp.Diff(tbl, again); diff != "" {
		t.Errorf("table changed on round trip (-want +got):\n%s", diff)
	}
}

func TestParseParameter(t *testing.T) {
	tests := []struct {
		in      string
		want    Param
		wantErr bool
	}{
		{in: "cores: 4", want: Param{Key: "cores", Value: "4"}},
		{in: "a:b:c", want: Param{Key: "a:b", Value: "c"}},
		{in: " points :10 ", want: Param{Key: "points", Value: "10"}},
		{in: "novalue:", wantErr: true},
		{in: ":4", wantErr: true},
		{in: "cores", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseParameter(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParamFlag(t *testing.T) {
	var f ParamFlag
	require.NoError(t, f.Set("cores: 4"))
	require.NoError(t, f.Set("algorithm:1"))
	require.NoError(t, f.Set("cores:8"))
	assert.Error(t, f.Set("broken"))

	assert.Equal(t, Params{{Key: "cores", Value: "8"}, {Key: "algorithm", Value: "1"}}, f.Params)
	assert.Equal(t, "{cores: 8, algorithm: 1}", f.String())
	assert.Equal(t, "{}", Params(nil).String())
}
