package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoneyMarshalsAsBareNumber(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "0"},
		{"12.99", "12.99"},
		{"-4.5", "-4.5"},
		{"1000000.01", "1000000.01"},
	}

	for _, tt := range tests {
		m := MustMoney(tt.in)
		b, err := json.Marshal(m)
		require.NoError(t, err)
		assert.Equal(t, tt.want, string(b))
	}
}

func TestMoneyUnmarshalAcceptsNumberAndString(t *testing.T) {
	var m Money
	require.NoError(t, json.Unmarshal([]byte(`19.99`), &m))
	assert.True(t, m.Equal(MustMoney("19.99")))

	require.NoError(t, json.Unmarshal([]byte(`"19.99"`), &m))
	assert.True(t, m.Equal(MustMoney("19.99")))

	require.Error(t, json.Unmarshal([]byte(`"not a number"`), &m))
}

func TestMoneyArithmeticIsExact(t *testing.T) {
	// The classic binary-float trap: 0.1 + 0.2.
	sum := MustMoney("0.1").Add(MustMoney("0.2"))
	assert.True(t, sum.Equal(MustMoney("0.3")), "got %s", sum)

	total := MustMoney("19.99").MulInt(3)
	assert.True(t, total.Equal(MustMoney("59.97")), "got %s", total)

	net := MustMoney("100").Sub(MustMoney("33.33"))
	assert.True(t, net.Equal(MustMoney("66.67")), "got %s", net)
}

func TestMoneyZeroValue(t *testing.T) {
	var m Money
	b, err := json.Marshal(m)
	require.NoError(t, err)
	assert.Equal(t, "0", string(b))
	assert.True(t, m.Equal(MoneyFromInt(0)))
}

func TestMoneyFromStringRejectsGarbage(t *testing.T) {
	_, err := MoneyFromString("12.99.1")
	require.Error(t, err)
}
