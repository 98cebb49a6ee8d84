package value_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"golden_traff/internal/domain"
	"golden_traff/internal/domain/value"
	"golden_traff/pkg/errcodes"
)

func TestParseDealStatus(t *testing.T) {
	rq := require.New(t)

	for _, raw := range []string{"pending", "success", "failed"} {
		status, err := value.ParseDealStatus(raw)
		rq.NoError(err)
		rq.Equal(raw, status.String())
	}
}

func TestParseDealStatusInvalid(t *testing.T) {
	rq := require.New(t)

	for _, raw := range []string{"", "done", "SUCCESS", "canceled"} {
		_, err := value.ParseDealStatus(raw)
		rq.Error(err)

		code, ok := domain.GetCode(err)
		rq.True(ok)
		rq.Equal(errcodes.InvalidDealStatus, code)
	}
}

func TestParseAppType(t *testing.T) {
	rq := require.New(t)

	rq.Equal(value.AppTypeTeam, value.ParseAppType("team"))
	rq.Equal(value.AppTypeAdmin, value.ParseAppType("admin"))
	rq.Equal(value.AppTypeAdmin, value.ParseAppType(""))
	rq.Equal(value.AppTypeAdmin, value.ParseAppType("whatever"))
}
