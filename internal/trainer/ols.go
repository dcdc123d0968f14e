package trainer

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"golca/adapters/artifacts"
)

// fitOLS solves an ordinary-least-squares fit of y against X with an
// intercept column, via QR factorization.
func fitOLS(X *mat.Dense, y []float64) (*artifacts.LinearModel, error) {
	n, p := X.Dims()
	if n != len(y) {
		return nil, fmt.Errorf("row count mismatch: %d features rows, %d targets", n, len(y))
	}
	if n <= p+1 {
		return nil, fmt.Errorf("insufficient samples for %d features: %d", p, n)
	}

	design := mat.NewDense(n, p+1, nil)
	for i := 0; i < n; i++ {
		design.Set(i, 0, 1)
		for j := 0; j < p; j++ {
			design.Set(i, j+1, X.At(i, j))
		}
	}

	var qr mat.QR
	qr.Factorize(design)

	var beta mat.VecDense
	if err := qr.SolveVecTo(&beta, false, mat.NewVecDense(n, y)); err != nil {
		return nil, fmt.Errorf("least-squares solve failed: %w", err)
	}

	coefs := make([]float64, p)
	for j := 0; j < p; j++ {
		coefs[j] = beta.AtVec(j + 1)
	}
	return &artifacts.LinearModel{
		ModelType:    "LinearRegression",
		Intercept:    beta.AtVec(0),
		Coefficients: coefs,
	}, nil
}

// evaluate computes r-squared and mean absolute error of a model on a
// held-out set.
func evaluate(model *artifacts.LinearModel, X *mat.Dense, y []float64) (r2, mae float64) {
	n, _ := X.Dims()
	if n == 0 {
		return 0, 0
	}

	var yMean float64
	for _, v := range y {
		yMean += v
	}
	yMean /= float64(n)

	var ssRes, ssTot, absErr float64
	for i := 0; i < n; i++ {
		pred, err := model.Predict(mat.Row(nil, i, X))
		if err != nil {
			continue
		}
		residual := y[i] - pred
		ssRes += residual * residual
		ssTot += (y[i] - yMean) * (y[i] - yMean)
		absErr += math.Abs(residual)
	}

	mae = absErr / float64(n)
	if ssTot == 0 {
		return 0, mae
	}
	return 1 - ssRes/ssTot, mae
}
