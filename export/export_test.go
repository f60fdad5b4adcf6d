package export_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/confgraph/builder"
	"github.com/katalvlaran/confgraph/degree"
	"github.com/katalvlaran/confgraph/export"
)

func sampleDoc(t *testing.T) *export.Document {
	t.Helper()
	g, err := builder.Build(degree.NewSequence(2, 3, 1, 2, 3, 3), builder.WithSeed(11))
	require.NoError(t, err)

	return export.FromGraph(g, 11, 2)
}

func TestFromGraph(t *testing.T) {
	t.Parallel()

	doc := sampleDoc(t)
	_, err := uuid.Parse(doc.RunID)
	require.NoError(t, err)
	assert.Equal(t, uint64(11), doc.Seed)
	assert.Equal(t, 2, doc.MaxDegree)
	assert.Equal(t, 3, doc.MaxRealizedDegree, "parity quirk may exceed the sampling bound")
	assert.Equal(t, []string{"0", "1", "2", "3", "4", "5"}, doc.Nodes)
	assert.Equal(t, []int{2, 3, 1, 2, 3, 3}, doc.Degrees)
	assert.Len(t, doc.Edges, 7)
	require.NoError(t, doc.Validate())

	other := sampleDoc(t)
	assert.NotEqual(t, doc.RunID, other.RunID)
}

func TestFromResult(t *testing.T) {
	t.Parallel()

	r, err := builder.Run(20, 5, builder.WithSeed(3))
	require.NoError(t, err)
	doc := export.FromResult(r, 5)
	assert.Equal(t, uint64(3), doc.Seed)
	assert.Equal(t, r.Sequence.Values(), doc.Degrees)
	assert.Equal(t, r.Sequence.Max(), doc.MaxRealizedDegree)
}

func TestParsePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path       string
		want       export.Format
		compressed bool
		wantErr    bool
	}{
		{"g.yaml", export.FormatYAML, false, false},
		{"dir/g.YML", export.FormatYAML, false, false},
		{"g.json", export.FormatJSON, false, false},
		{"g.json.sz", export.FormatJSON, true, false},
		{"g.yaml.sz", export.FormatYAML, true, false},
		{"g.txt", "", false, true},
		{"g.sz", "", false, true},
		{"g", "", false, true},
	}
	for _, tc := range tests {
		t.Run(tc.path, func(t *testing.T) {
			t.Parallel()
			f, compressed, err := export.ParsePath(tc.path)
			if tc.wantErr {
				require.ErrorIs(t, err, export.ErrUnknownFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, f)
			assert.Equal(t, tc.compressed, compressed)
		})
	}
}

func TestWriteRead_Streams(t *testing.T) {
	t.Parallel()

	doc := sampleDoc(t)
	for _, f := range []export.Format{export.FormatYAML, export.FormatJSON} {
		var buf bytes.Buffer
		require.NoError(t, export.Write(&buf, doc, f))
		assert.Contains(t, buf.String(), "max_realized_degree")

		got, err := export.Read(&buf, f)
		require.NoError(t, err, f)
		assert.Equal(t, doc, got, f)
	}

	var buf bytes.Buffer
	assert.ErrorIs(t, export.Write(&buf, doc, "xml"), export.ErrUnknownFormat)
	_, err := export.Read(&buf, "xml")
	assert.ErrorIs(t, err, export.ErrUnknownFormat)
}

func TestWriteFileReadFile(t *testing.T) {
	t.Parallel()

	doc := sampleDoc(t)
	dir := t.TempDir()
	for _, name := range []string{"g.yaml", "g.json", "g.yaml.sz", "g.json.sz"} {
		path := filepath.Join(dir, name)
		require.NoError(t, export.WriteFile(path, doc), name)

		got, err := export.ReadFile(path)
		require.NoError(t, err, name)
		assert.Equal(t, doc, got, name)
	}

	plain, err := os.ReadFile(filepath.Join(dir, "g.json"))
	require.NoError(t, err)
	packed, err := os.ReadFile(filepath.Join(dir, "g.json.sz"))
	require.NoError(t, err)
	assert.NotEqual(t, plain, packed)

	assert.ErrorIs(t, export.WriteFile(filepath.Join(dir, "g.csv"), doc), export.ErrUnknownFormat)
	_, err = export.ReadFile(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestValidate_Corruption(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(d *export.Document)
	}{
		{"bad run id", func(d *export.Document) { d.RunID = "nope" }},
		{"degree mismatch", func(d *export.Document) { d.Degrees[0]++ }},
		{"dropped edge", func(d *export.Document) { d.Edges = d.Edges[1:] }},
		{"unknown endpoint", func(d *export.Document) { d.Edges[0].To = "ghost" }},
		{"node/degree length", func(d *export.Document) { d.Degrees = d.Degrees[:2] }},
		{"duplicate node", func(d *export.Document) { d.Nodes[1] = d.Nodes[0] }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			doc := sampleDoc(t)
			tc.mutate(doc)
			assert.ErrorIs(t, doc.Validate(), export.ErrCorruptDocument)

			var buf bytes.Buffer
			require.NoError(t, export.Write(&buf, doc, export.FormatJSON))
			_, err := export.Read(&buf, export.FormatJSON)
			assert.ErrorIs(t, err, export.ErrCorruptDocument)
		})
	}
}

func TestRead_UnknownFields(t *testing.T) {
	t.Parallel()

	_, err := export.Read(bytes.NewBufferString(`{"run_id":"x","bogus":1}`), export.FormatJSON)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, export.ErrCorruptDocument)
}
