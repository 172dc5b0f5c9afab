package predictor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLinearRegressionPerfectFit(t *testing.T) {
	points := []Point{
		{X: 0, Y: 10},
		{X: 1, Y: 20},
		{X: 2, Y: 30},
		{X: 3, Y: 40},
	}

	fit := LinearRegression(points)

	assert.InDelta(t, 10.0, fit.Slope, 1e-9)
	assert.InDelta(t, 10.0, fit.Intercept, 1e-9)
	assert.Equal(t, 1.0, fit.R2)
}

func TestLinearRegressionNoisyFit(t *testing.T) {
	// y = 2x + 1 with symmetric noise on the middle points: the fit keeps
	// the true line and R2 drops below 1.
	points := []Point{
		{X: 0, Y: 1},
		{X: 1, Y: 4},
		{X: 2, Y: 4},
		{X: 3, Y: 7},
	}

	fit := LinearRegression(points)

	assert.InDelta(t, 1.8, fit.Slope, 1e-9)
	assert.InDelta(t, 1.3, fit.Intercept, 1e-9)
	assert.Greater(t, fit.R2, 0.0)
	assert.Less(t, fit.R2, 1.0)
}

func TestLinearRegressionFlatData(t *testing.T) {
	points := []Point{
		{X: 0, Y: 5},
		{X: 1, Y: 5},
		{X: 2, Y: 5},
	}

	fit := LinearRegression(points)

	assert.Equal(t, 0.0, fit.Slope)
	assert.InDelta(t, 5.0, fit.Intercept, 1e-9)
	assert.Equal(t, 0.0, fit.R2)
}

func TestLinearRegressionDegenerateInputs(t *testing.T) {
	assert.Equal(t, Regression{}, LinearRegression(nil))
	assert.Equal(t, Regression{}, LinearRegression([]Point{{X: 0, Y: 3}}))

	// All points on the same x: a flat line through the mean.
	fit := LinearRegression([]Point{{X: 2, Y: 10}, {X: 2, Y: 20}})
	assert.Equal(t, 0.0, fit.Slope)
	assert.InDelta(t, 15.0, fit.Intercept, 1e-9)
	assert.Equal(t, 0.0, fit.R2)
}

func TestMovingAverage(t *testing.T) {
	values := []float64{10, 20, 30, 40, 50}

	assert.Equal(t, []float64{20, 30, 40}, MovingAverage(values, 3))
	assert.Equal(t, []float64{30}, MovingAverage(values, 5))

	// Shorter than the window, or a non-positive window, passes through.
	assert.Equal(t, values, MovingAverage(values, 6))
	assert.Equal(t, values, MovingAverage(values, 0))
	assert.Empty(t, MovingAverage(nil, 0))
}

func TestMovingAverageRounding(t *testing.T) {
	result := MovingAverage([]float64{1, 2, 2}, 3)
	assert.Equal(t, []float64{1.67}, result)
}
