package main

import (
	"fmt"
	"math"
)

const _euler_gamma = 0.5772156649015329

/*
Exponential integral E1(x) for x > 0.

gonum's mathext package has no exponential integral, so the two standard
expansions are implemented here: the convergent series

	E1(x) = -gamma - ln x - sum_{k>=1} (-x)^k / (k k!)

for x <= 1 and the modified Lentz continued fraction

	E1(x) = exp(-x) / (x + 1/(1 + 1/(x + 2/(1 + 2/(x + ...)))))

above. Both converge to machine precision in the respective range; for
large x the exp(-x) factor underflows to zero, which is the correct limit.

Args:
	x: argument, must be positive

Returns:
	E1(x)
*/
func e1(x float64) float64 {
	if x <= 0.0 {
		panic(fmt.Sprintf("e1 requires a positive argument, got %e", x))
	}

	const eps = 1e-15
	const max_iter = 200

	if x <= 1.0 {
		sum := -_euler_gamma - math.Log(x)
		term := 1.0
		for k := 1; k <= max_iter; k++ {
			term *= -x / float64(k)
			del := -term / float64(k)
			sum += del
			if math.Abs(del) < math.Abs(sum)*eps {
				return sum
			}
		}
		panic(fmt.Sprintf("e1 series did not converge at x=%e", x))
	}

	// modified Lentz's method
	const tiny = 1e-300
	b := x + 1.0
	c := 1.0 / tiny
	d := 1.0 / b
	h := d
	for k := 1; k <= max_iter; k++ {
		a := -float64(k) * float64(k)
		b += 2.0
		d = 1.0 / (a*d + b)
		c = b + a/c
		del := c * d
		h *= del
		if math.Abs(del-1.0) < eps {
			return h * math.Exp(-x)
		}
	}
	panic(fmt.Sprintf("e1 continued fraction did not converge at x=%e", x))
}
