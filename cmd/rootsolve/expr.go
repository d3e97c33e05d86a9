package main

import (
	"math"

	"github.com/Knetic/govaluate"

	"github.com/katalvlaran/numkit/rootfind"
)

// mathFuncs exposes the usual single-variable toolbox to expressions.
var mathFuncs = map[string]govaluate.ExpressionFunction{
	"sin":  func(args ...interface{}) (interface{}, error) { return math.Sin(toFloat(args[0])), nil },
	"cos":  func(args ...interface{}) (interface{}, error) { return math.Cos(toFloat(args[0])), nil },
	"tan":  func(args ...interface{}) (interface{}, error) { return math.Tan(toFloat(args[0])), nil },
	"exp":  func(args ...interface{}) (interface{}, error) { return math.Exp(toFloat(args[0])), nil },
	"log":  func(args ...interface{}) (interface{}, error) { return math.Log(toFloat(args[0])), nil },
	"sqrt": func(args ...interface{}) (interface{}, error) { return math.Sqrt(toFloat(args[0])), nil },
	"abs":  func(args ...interface{}) (interface{}, error) { return math.Abs(toFloat(args[0])), nil },
	"pow": func(args ...interface{}) (interface{}, error) {
		return math.Pow(toFloat(args[0]), toFloat(args[1])), nil
	},
}

// compile parses an expression in x into a rootfind.Func. Evaluation
// failures surface as NaN, which the solver reports as a bracketing
// failure rather than a silent wrong answer.
func compile(src string) (rootfind.Func, error) {
	expr, err := govaluate.NewEvaluableExpressionWithFunctions(src, mathFuncs)
	if err != nil {
		return nil, err
	}
	params := map[string]interface{}{"x": 0.0}
	return func(x float64) float64 {
		params["x"] = x
		v, err := expr.Evaluate(params)
		if err != nil {
			return math.NaN()
		}
		return toFloat(v)
	}, nil
}

func toFloat(v interface{}) float64 {
	switch t := v.(type) {
	case float64:
		return t
	case int:
		return float64(t)
	case int64:
		return float64(t)
	default:
		return math.NaN()
	}
}
