package service_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	service "golden_traff/internal/domain/service/deal"
)

func TestCalculateDeductions(t *testing.T) {
	rq := require.New(t)

	d := service.CalculateDeductions(9500)

	rq.EqualValues(570, d.Tax)
	rq.EqualValues(500, d.Leads)
	rq.EqualValues(2000, d.Employees)
	rq.EqualValues(3070, d.TotalDeductions)
	rq.EqualValues(6430, d.Final)
}

func TestCalculateDeductionsBalance(t *testing.T) {
	rq := require.New(t)

	for _, amount := range []int64{0, 1, 25, 2000, 9500, 9999, 1000000} {
		d := service.CalculateDeductions(amount)

		rq.Equal(d.Tax+d.Leads+d.Employees, d.TotalDeductions)
		rq.Equal(amount-d.TotalDeductions, d.Final)
	}
}

func TestCalculateDeductionsRounding(t *testing.T) {
	rq := require.New(t)

	// 25 * 0.06 = 1.5, округляется вверх.
	rq.EqualValues(2, service.CalculateDeductions(25).Tax)
	// 9999 * 0.06 = 599.94.
	rq.EqualValues(600, service.CalculateDeductions(9999).Tax)
}
