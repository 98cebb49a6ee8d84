package value_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"golden_traff/internal/domain/value"
)

func TestNormalizeUsername(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		raw  string
		want string
	}{
		{raw: "seller", want: "@seller"},
		{raw: "@seller", want: "@seller"},
		{raw: "  @Seller  ", want: "@Seller"},
		{raw: "", want: "@user"},
		{raw: "   ", want: "@user"},
		{raw: "@", want: "@user"},
	}

	for _, tc := range testCases {
		rq.Equal(tc.want, value.NormalizeUsername(tc.raw).String())
	}
}

func TestUsernameKey(t *testing.T) {
	rq := require.New(t)

	rq.Equal("@seller", value.Username("@SeLLer").Key())
	rq.Equal(value.Username("@SELLER").Key(), value.Username("@seller").Key())
}
