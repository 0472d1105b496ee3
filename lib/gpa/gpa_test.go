package gpa

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func ptr(v float64) *float64 {
	return &v
}

func TestScalePrecedence(t *testing.T) {
	testCases := []struct {
		name     string
		expected float64
	}{
		{"AP Calculus BC", ScaleAPIB},
		{"IB Chemistry HL", ScaleAPIB},
		{"Computer Sci 3 Adv", ScaleAPIB},
		{"English III Adv", ScaleAdvanced},
		{"Algebra I", ScaleStandard},
		// a name carrying both markers must resolve to AP, not Adv
		{"AP Physics Adv Topics", ScaleAPIB},
	}
	for _, test := range testCases {
		require.Equal(t, test.expected, Scale(test.name), test.name)
	}
}

func TestWeightedEmpty(t *testing.T) {
	require.Equal(t, Result{}, Weighted(nil, nil))
	require.Equal(t, Result{}, Weighted([]string{}, []*float64{}))
}

func TestWeightedSingleAPPerfect(t *testing.T) {
	res := Weighted([]string{"AP Calculus BC"}, []*float64{ptr(100)})
	require.Equal(t, Result{Weighted: 6.0, Max: 6.0}, res)
}

func TestWeightedAllUngraded(t *testing.T) {
	res := Weighted([]string{"Algebra I"}, []*float64{nil})
	require.Equal(t, Result{}, res)
}

func TestWeightedSkipsUngraded(t *testing.T) {
	res := Weighted(
		[]string{"AP Bio", "Algebra I"},
		[]*float64{ptr(90), nil},
	)
	// only AP Bio counts: 6.0 - (100-90)/10 = 5.0 over N=1
	require.Equal(t, Result{Weighted: 5.0, Max: 6.0}, res)
}

func TestWeightedRounding(t *testing.T) {
	res := Weighted(
		[]string{"Algebra I", "English III Adv", "AP Bio"},
		[]*float64{ptr(97), ptr(88.6), ptr(91.2)},
	)
	// 97 -> 4.7, round(88.6)=89 -> 4.4, round(91.2)=91 -> 5.1
	require.Equal(t, Result{Weighted: 4.7333, Max: 5.5}, res)
}

func TestWeightedHalfGradeTie(t *testing.T) {
	// .5 grades round to the even integer: 92.5 -> 92, 93.5 -> 94
	res := Weighted([]string{"Algebra I"}, []*float64{ptr(92.5)})
	require.Equal(t, Result{Weighted: 4.2, Max: 5.0}, res)

	res = Weighted([]string{"Algebra I"}, []*float64{ptr(93.5)})
	require.Equal(t, Result{Weighted: 4.4, Max: 5.0}, res)
}

func TestWeightedFloor(t *testing.T) {
	// a grade bad enough to go negative clamps to zero instead
	res := Weighted([]string{"Algebra I"}, []*float64{ptr(20)})
	require.Equal(t, Result{Weighted: 0, Max: 5.0}, res)
}

func TestContributionFormula(t *testing.T) {
	for g := 0; g <= 100; g++ {
		grade := float64(g)
		res := Weighted([]string{"Algebra I"}, []*float64{&grade})
		expected := math.Max(0, 5.0-(100-grade)/10)
		require.Equal(t, round4(expected), res.Weighted, fmt.Sprintf("grade %d", g))
	}
}
