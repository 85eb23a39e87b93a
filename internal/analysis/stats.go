package analysis

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Pearson computes the Pearson correlation between xs and ys together with
// the two-sided p-value of the t-statistic r*sqrt((n-2)/(1-r^2)).
func Pearson(xs, ys []float64) (Correlation, error) {
	n := len(xs)
	if n != len(ys) {
		return Correlation{}, fmt.Errorf("sample length mismatch: %d vs %d", n, len(ys))
	}
	if n < 3 {
		return Correlation{}, fmt.Errorf("need at least 3 observations, got %d", n)
	}

	r := stat.Correlation(xs, ys, nil)
	if math.IsNaN(r) {
		return Correlation{}, fmt.Errorf("correlation undefined: a sample has zero variance")
	}

	df := float64(n - 2)
	var t, p float64
	if 1-r*r < 1e-15 {
		// perfect correlation, t diverges
		t = math.Inf(1)
		if r < 0 {
			t = math.Inf(-1)
		}
		p = 0
	} else {
		t = r * math.Sqrt(df/(1-r*r))
		p = twoSidedP(t, df)
	}

	return Correlation{R: r, T: t, P: p, N: n}, nil
}

// FitOLS fits y = b0 + b1*x by ordinary least squares and derives standard
// errors, t-statistics and two-sided p-values for both coefficients.
func FitOLS(xs, ys []float64) (Regression, error) {
	n := len(xs)
	if n != len(ys) {
		return Regression{}, fmt.Errorf("sample length mismatch: %d vs %d", n, len(ys))
	}
	if n < 3 {
		return Regression{}, fmt.Errorf("need at least 3 observations, got %d", n)
	}

	alpha, beta := stat.LinearRegression(xs, ys, nil, false)
	if math.IsNaN(alpha) || math.IsNaN(beta) {
		return Regression{}, fmt.Errorf("regression undefined: regressor has zero variance")
	}
	r2 := stat.RSquared(xs, ys, nil, alpha, beta)

	xMean := stat.Mean(xs, nil)
	var sxx, rss float64
	for i := range xs {
		dx := xs[i] - xMean
		sxx += dx * dx
		resid := ys[i] - (alpha + beta*xs[i])
		rss += resid * resid
	}
	if sxx <= 0 {
		return Regression{}, fmt.Errorf("regression undefined: regressor has zero variance")
	}

	df := float64(n - 2)
	sigma2 := rss / df
	seSlope := math.Sqrt(sigma2 / sxx)
	seIntercept := math.Sqrt(sigma2 * (1/float64(n) + xMean*xMean/sxx))

	reg := Regression{
		Intercept:       alpha,
		Slope:           beta,
		InterceptStdErr: seIntercept,
		SlopeStdErr:     seSlope,
		R2:              r2,
		N:               n,
	}
	reg.SlopeT, reg.SlopeP = coefInference(beta, seSlope, df)
	reg.InterceptT, reg.InterceptP = coefInference(alpha, seIntercept, df)
	return reg, nil
}

// OneSampleTTest tests whether the mean of the sample differs from mu.
func OneSampleTTest(sample []float64, mu float64) (TTest, error) {
	n := len(sample)
	if n < 2 {
		return TTest{}, fmt.Errorf("need at least 2 observations, got %d", n)
	}

	mean := stat.Mean(sample, nil)
	sd := stat.StdDev(sample, nil) // sample standard deviation, n-1
	if sd == 0 {
		return TTest{}, fmt.Errorf("t-test undefined: sample has zero variance")
	}

	df := n - 1
	t := (mean - mu) / (sd / math.Sqrt(float64(n)))
	return TTest{
		T:        t,
		P:        twoSidedP(t, float64(df)),
		MeanDiff: mean - mu,
		StdDev:   sd,
		N:        n,
		DF:       df,
	}, nil
}

func coefInference(coef, se, df float64) (t, p float64) {
	if se == 0 {
		t = math.Inf(1)
		if coef < 0 {
			t = math.Inf(-1)
		}
		return t, 0
	}
	t = coef / se
	return t, twoSidedP(t, df)
}

// twoSidedP returns the two-sided p-value of t under Student's t with df
// degrees of freedom.
func twoSidedP(t, df float64) float64 {
	dist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}
	return 2 * dist.CDF(-math.Abs(t))
}
