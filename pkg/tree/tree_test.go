package tree

import (
	"bytes"
	"errors"
	"io"
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ramsey-B/clover/pkg/models"
)

// buildGE wires the GE example hierarchy used throughout the tests.
func buildGE(t *testing.T) *models.Account {
	t.Helper()

	daniel := models.NewSalesRep("Daniel", "Testperson")
	william := models.NewSalesRep("William", "Testperson")
	janet := models.NewSalesRep("Janet", "Testperson")

	manufacturing := models.NewMarketSegment("Manufacturing")
	rnd := models.NewMarketSegment("R&D")
	aerospace := models.NewMarketSegment("Aerospace")
	defense := models.NewMarketSegment("Defense")
	consumer := models.NewMarketSegment("Consumer Goods")

	ge := models.NewAccount("GE", daniel, manufacturing, rnd)

	jet := models.NewChildAccount("Jet Engines", ge, nil)
	require.NoError(t, jet.AddToMarketSegment(aerospace))

	dod := models.NewChildAccount("DoD Contracts", jet, william)
	dod.RemoveFromMarketSegment(manufacturing)
	require.NoError(t, dod.AddToMarketSegment(defense))

	appliances := models.NewChildAccount("Appliances", ge, janet, manufacturing, consumer)
	washers := models.NewChildAccount("Washing Machines", appliances, nil)
	washers.RemoveFromMarketSegment(manufacturing)

	return ge
}

func TestRendererLinesGEScenario(t *testing.T) {
	ge := buildGE(t)

	want := []string{
		"> GE (Manufacturing, R&D): Daniel Testperson",
		"--> Jet Engines (Manufacturing, R&D, Aerospace): Daniel Testperson",
		"----> DoD Contracts (R&D, Aerospace, Defense): William Testperson",
		"--> Appliances (Manufacturing, Consumer Goods): Janet Testperson",
		"----> Washing Machines (Consumer Goods): Janet Testperson",
	}

	got := NewRenderer().Lines(ge)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Lines() mismatch (-want +got):\n%s", diff)
	}
}

func TestRendererRender(t *testing.T) {
	manufacturing := models.NewMarketSegment("Manufacturing")
	rnd := models.NewMarketSegment("R&D")
	ge := models.NewAccount("GE", models.NewSalesRep("Daniel", "Testperson"), manufacturing, rnd)
	models.NewChildAccount("Jet Engines", ge, nil)

	got := NewRenderer().Render(ge)

	assert.Equal(t, "> GE (Manufacturing, R&D): Daniel Testperson\n--> Jet Engines (Manufacturing, R&D): Daniel Testperson\n", got)
}

func TestRendererUnassignedRep(t *testing.T) {
	account := models.NewAccount("Lonely", nil)

	assert.Equal(t, []string{"> Lonely (): "}, NewRenderer().Lines(account))
	assert.Equal(t, []string{"> Lonely (): None"}, NewRenderer(WithUnassignedRep("None")).Lines(account))
}

func TestRendererLine(t *testing.T) {
	segment := models.NewMarketSegment("Defense")
	account := models.NewAccount("DoD Contracts", models.NewSalesRep("William", "Testperson"), segment)

	r := NewRenderer()
	assert.Equal(t, "> DoD Contracts (Defense): William Testperson", r.Line(account, 0))
	assert.Equal(t, "------> DoD Contracts (Defense): William Testperson", r.Line(account, 3))
}

func TestRendererNilRoot(t *testing.T) {
	r := NewRenderer()

	assert.Empty(t, r.Lines(nil))
	assert.Empty(t, r.Lines((*models.Account)(nil)))
	assert.Equal(t, "", r.Render(nil))
}

func TestIndent(t *testing.T) {
	tests := []struct {
		depth int
		want  string
	}{
		{depth: -1, want: ""},
		{depth: 0, want: ""},
		{depth: 1, want: "--"},
		{depth: 2, want: "----"},
		{depth: 4, want: "--------"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Indent(tt.depth), "depth %d", tt.depth)
	}
}

func TestRendererDeepTreeOrder(t *testing.T) {
	root := models.NewAccount("root", nil)
	a := models.NewChildAccount("a", root, nil)
	models.NewChildAccount("a1", a, nil)
	a2 := models.NewChildAccount("a2", a, nil)
	models.NewChildAccount("a2x", a2, nil)
	models.NewChildAccount("b", root, nil)

	want := []string{
		"> root (): ",
		"--> a (): ",
		"----> a1 (): ",
		"----> a2 (): ",
		"------> a2x (): ",
		"--> b (): ",
	}
	assert.Equal(t, want, NewRenderer().Lines(root))
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("closed")
}

func TestRendererWriteError(t *testing.T) {
	account := models.NewAccount("acc", nil)

	err := NewRenderer().Write(failingWriter{}, account)
	require.Error(t, err)

	var buf bytes.Buffer
	require.NoError(t, NewRenderer().Write(&buf, account))
	assert.Equal(t, "> acc (): \n", buf.String())
}

func TestPrint(t *testing.T) {
	account := models.NewAccount("acc", models.NewSalesRep("Daniel", "Testperson"))

	out := captureStdout(t, func() { Print(account) })

	assert.Equal(t, "> acc (): Daniel Testperson\n", out)
}

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()

	r, w, err := os.Pipe()
	require.NoError(t, err)

	stdout := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = stdout }()

	fn()
	require.NoError(t, w.Close())

	out, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(out)
}
