package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/zcalc/internal/calc"
	"github.com/five82/zcalc/internal/evaluator"
)

func TestSelect(t *testing.T) {
	cases := []struct {
		tab      Tab
		compact  bool
		advanced bool
		want     Selection
	}{
		{TabStandard, false, false, Selection{Layout: ExpandedStandard}},
		{TabStandard, false, true, Selection{Layout: ExpandedStandard}},
		{TabStandard, true, false, Selection{Layout: CompactStandard}},
		{TabStandard, true, true, Selection{Layout: CompactStandard, Advanced: true}},
		{TabComplex, false, true, Selection{Layout: ExpandedComplex}},
		{TabComplex, true, false, Selection{Layout: CompactComplex}},
		{TabComplex, true, true, Selection{Layout: CompactComplex, Advanced: true}},
		{TabGraph, true, true, Selection{Layout: Grapher}},
		{TabGraph, false, false, Selection{Layout: Grapher}},
	}
	for _, tc := range cases {
		got := Select(tc.tab, tc.compact, tc.advanced)
		assert.Equal(t, tc.want, got, "Select(%s, %v, %v)", tc.tab, tc.compact, tc.advanced)
	}
}

func TestIsCompact(t *testing.T) {
	assert.True(t, IsCompact(79, 80))
	assert.False(t, IsCompact(80, 80))
	assert.True(t, IsCompact(50, 0), "zero breakpoint falls back to default")
	assert.False(t, IsCompact(DefaultCompactWidth, -1))
}

func TestTabCycle(t *testing.T) {
	assert.Equal(t, TabComplex, TabStandard.Next())
	assert.Equal(t, TabStandard, TabGraph.Next())
	assert.Equal(t, TabGraph, TabStandard.Prev())
	assert.Equal(t, "Graph", TabGraph.String())
	assert.Equal(t, "Tab(7)", Tab(7).String())
}

func TestController(t *testing.T) {
	c := NewController(0)
	assert.Equal(t, DefaultCompactWidth, c.Breakpoint())
	assert.Equal(t, TabStandard, c.Tab())

	c = c.Resize(60)
	assert.True(t, c.Compact())
	assert.Equal(t, Selection{Layout: CompactStandard}, c.Selection())

	c = c.ToggleAdvanced()
	assert.Equal(t, Selection{Layout: CompactStandard, Advanced: true}, c.Selection())

	c = c.NextTab()
	assert.True(t, c.IsComplexMode())
	assert.Equal(t, Selection{Layout: CompactComplex, Advanced: true}, c.Selection())

	// The toggle survives a widen-then-narrow cycle.
	c = c.Resize(120).Resize(40)
	assert.True(t, c.ShowAdvanced())

	c = c.SetTab(Tab(42))
	assert.Equal(t, TabComplex, c.Tab())

	c = c.PrevTab().PrevTab()
	assert.Equal(t, TabGraph, c.Tab())
	assert.Equal(t, Grapher, c.Selection().Layout)
}

func TestKeypadFor_ExpandedStandard(t *testing.T) {
	k := KeypadFor(Selection{Layout: ExpandedStandard})
	assert.Equal(t, []string{
		"sin", "cos", "tan", "log",
		"ln", "√", "x^y", "π",
		"C", "(", ")", "÷",
		"7", "8", "9", "×",
		"4", "5", "6", "−",
		"1", "2", "3", "+",
		"0", ".", "=",
	}, k.Labels())

	zero, ok := k.Find("0")
	require.True(t, ok)
	assert.True(t, zero.Wide)
}

func TestKeypadFor_ExpandedComplex(t *testing.T) {
	k := KeypadFor(Selection{Layout: ExpandedComplex})
	labels := k.Labels()
	assert.Equal(t, []string{"i", "|z|", "arg", "z*", "Re", "Im", "e^z", "e"}, labels[:8])
	assert.Equal(t, []string{"0", ".", "i", "="}, labels[len(labels)-4:])

	e, ok := k.Find("e")
	require.True(t, ok)
	assert.Equal(t, calc.Constant("e", "e"), e.Action)

	conj, ok := k.Find("z*")
	require.True(t, ok)
	assert.Equal(t, calc.Function("conj"), conj.Action)
}

func TestKeypadFor_CompactAdvancedPanel(t *testing.T) {
	hidden := KeypadFor(Selection{Layout: CompactStandard})
	_, ok := hidden.Find("sin")
	assert.False(t, ok)
	_, ok = hidden.Find("fx")
	assert.True(t, ok)
	back, ok := hidden.Find("⌫")
	require.True(t, ok)
	assert.Equal(t, calc.ActBackspace, back.Action.Kind)

	shown := KeypadFor(Selection{Layout: CompactStandard, Advanced: true})
	_, ok = shown.Find("sin")
	assert.True(t, ok)
	_, ok = shown.Find("|z|")
	assert.False(t, ok, "complex functions stay off the standard keypad")

	cplx := KeypadFor(Selection{Layout: CompactComplex, Advanced: true})
	for _, label := range []string{"|z|", "arg", "z*", "e^z", "i"} {
		_, ok := cplx.Find(label)
		assert.True(t, ok, label)
	}
	_, ok = cplx.Find("⌫")
	assert.False(t, ok, "complex keypad trades backspace for i")
}

func TestKeypadFor_Grapher(t *testing.T) {
	assert.Nil(t, KeypadFor(Selection{Layout: Grapher}))
}

func TestKeypadAt_Clamps(t *testing.T) {
	k := KeypadFor(Selection{Layout: ExpandedStandard})
	b, r, c, ok := k.At(100, 100)
	require.True(t, ok)
	assert.Equal(t, len(k)-1, r)
	assert.Equal(t, 2, c)
	assert.Equal(t, "=", b.Label)

	b, r, c, ok = k.At(-3, -3)
	require.True(t, ok)
	assert.Equal(t, 0, r)
	assert.Equal(t, 0, c)
	assert.Equal(t, "sin", b.Label)

	_, _, _, ok = Keypad(nil).At(0, 0)
	assert.False(t, ok)
}

func TestKeypadDrivesBuffer(t *testing.T) {
	k := KeypadFor(Selection{Layout: ExpandedStandard})
	s := calc.New()
	for _, label := range []string{"7", "×", "6", "="} {
		b, ok := k.Find(label)
		require.True(t, ok, label)
		s = s.Apply(b.Action, evaluator.Engine{})
	}
	assert.Equal(t, "42", s.Display)
	assert.True(t, s.IsResult)
}
