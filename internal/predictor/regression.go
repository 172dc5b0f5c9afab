package predictor

import "fjacquet/bank-insights/internal/mathutil"

// Point is a single observation for the regression fit.
type Point struct {
	X float64
	Y float64
}

// Regression holds an ordinary least squares fit of y = slope*x + intercept.
// R2 is the coefficient of determination against the mean, rounded to 4
// decimals.
type Regression struct {
	Slope     float64
	Intercept float64
	R2        float64
}

// LinearRegression fits ordinary least squares over the points. Fewer than
// two points, or a degenerate x spread, yields a flat line through the mean
// with R2 = 0.
func LinearRegression(points []Point) Regression {
	n := float64(len(points))
	if len(points) < 2 {
		return Regression{}
	}

	var sumX, sumY, sumXY, sumX2 float64
	for _, p := range points {
		sumX += p.X
		sumY += p.Y
		sumXY += p.X * p.Y
		sumX2 += p.X * p.X
	}

	denominator := n*sumX2 - sumX*sumX
	if denominator == 0 {
		return Regression{Intercept: sumY / n}
	}

	slope := (n*sumXY - sumX*sumY) / denominator
	intercept := (sumY - slope*sumX) / n

	mean := sumY / n
	var ssRes, ssTot float64
	for _, p := range points {
		residual := p.Y - (slope*p.X + intercept)
		ssRes += residual * residual
		deviation := p.Y - mean
		ssTot += deviation * deviation
	}
	r2 := 0.0
	if ssTot != 0 {
		r2 = 1 - ssRes/ssTot
	}

	return Regression{
		Slope:     slope,
		Intercept: intercept,
		R2:        mathutil.Round4(r2),
	}
}

// MovingAverage computes the trailing moving average of values over the
// given window, each rounded to 2 decimals. Inputs shorter than the window
// are returned unchanged.
func MovingAverage(values []float64, window int) []float64 {
	if window <= 0 || len(values) < window {
		return values
	}
	result := make([]float64, 0, len(values)-window+1)
	for i := 0; i <= len(values)-window; i++ {
		sum := 0.0
		for _, v := range values[i : i+window] {
			sum += v
		}
		result = append(result, mathutil.Round2(sum/float64(window)))
	}
	return result
}
