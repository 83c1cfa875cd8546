package evaluator_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/truthdiscovery/evaluator"
	"github.com/katalvlaran/truthdiscovery/result"
	"github.com/stretchr/testify/require"
)

func sampleResult() *result.Result {
	return result.New(
		map[string]float64{"s1": 1, "s2": 0.8},
		map[string]map[string]float64{
			"x": {"one": 1},
			"y": {"nine": 1, "eight": 0.4},
		},
		0.01,
		nil,
	)
}

func TestAccuracyAllCorrect(t *testing.T) {
	e := evaluator.New(map[string]string{"y": "nine"}, rand.New(rand.NewSource(1)))
	acc, err := e.Accuracy(sampleResult())
	require.NoError(t, err)
	require.Equal(t, 1.0, acc)
}

func TestAccuracySingleClaimedValueIsVacuouslyPerfect(t *testing.T) {
	e := evaluator.New(map[string]string{"x": "one"}, rand.New(rand.NewSource(1)))
	acc, err := e.Accuracy(sampleResult())
	require.NoError(t, err)
	require.Equal(t, 1.0, acc)
}

func TestAccuracyNoTrueValuesSupplied(t *testing.T) {
	e := evaluator.New(map[string]string{}, rand.New(rand.NewSource(1)))
	_, err := e.Accuracy(sampleResult())
	require.ErrorIs(t, err, evaluator.ErrNoScorableVariables)
}

func TestAccuracyUnknownVariable(t *testing.T) {
	e := evaluator.New(map[string]string{"z": "seven"}, rand.New(rand.NewSource(1)))
	_, err := e.Accuracy(sampleResult())
	require.ErrorIs(t, err, evaluator.ErrUnknownVariable)
}

func TestAccuracyWrongValue(t *testing.T) {
	e := evaluator.New(map[string]string{"y": "eight"}, rand.New(rand.NewSource(1)))
	acc, err := e.Accuracy(sampleResult())
	require.NoError(t, err)
	require.Equal(t, 0.0, acc)
}
