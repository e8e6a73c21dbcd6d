package domain

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("valid money creation", func(t *testing.T) {
		m, err := NewMoney(249900, 100)
		require.NoError(t, err)
		assert.Equal(t, 2499.0, m.Float64())
	})

	t.Run("zero denominator returns error", func(t *testing.T) {
		_, err := NewMoney(100, 0)
		assert.Error(t, err)
	})

	t.Run("negative amounts allowed", func(t *testing.T) {
		m, err := NewMoney(-100, 1)
		require.NoError(t, err)
		assert.True(t, m.IsNegative())
	})
}

func TestNewMoneyFromFloat(t *testing.T) {
	t.Run("whole number", func(t *testing.T) {
		m, err := NewMoneyFromFloat(20)
		require.NoError(t, err)
		assert.Equal(t, int64(20), m.Numerator())
		assert.Equal(t, int64(1), m.Denominator())
	})

	t.Run("decimal stays exact", func(t *testing.T) {
		m, err := NewMoneyFromFloat(19.99)
		require.NoError(t, err)
		assert.Equal(t, "19.99", m.String())
	})

	t.Run("zero", func(t *testing.T) {
		m, err := NewMoneyFromFloat(0)
		require.NoError(t, err)
		assert.True(t, m.IsZero())
	})
}

func TestMoney_Arithmetic(t *testing.T) {
	t.Run("add", func(t *testing.T) {
		m1, _ := NewMoney(100, 1)
		m2, _ := NewMoney(50, 1)
		assert.Equal(t, 150.0, m1.Add(m2).Float64())
	})

	t.Run("subtract", func(t *testing.T) {
		m1, _ := NewMoney(100, 1)
		m2, _ := NewMoney(30, 1)
		assert.Equal(t, 70.0, m1.Subtract(m2).Float64())
	})

	t.Run("multiply by quantity", func(t *testing.T) {
		price, _ := NewMoney(1999, 100) // 19.99
		assert.Equal(t, "59.97", price.MultiplyByInt(3).String())
	})

	t.Run("multiply by tax rate", func(t *testing.T) {
		subtotal, _ := NewMoney(20, 1)
		rate := big.NewRat(10, 100)
		assert.Equal(t, 2.0, subtotal.MultiplyByRat(rate).Float64())
	})

	t.Run("operands are not mutated", func(t *testing.T) {
		m1, _ := NewMoney(100, 1)
		m2, _ := NewMoney(50, 1)
		_ = m1.Add(m2)
		assert.Equal(t, 100.0, m1.Float64())
		assert.Equal(t, 50.0, m2.Float64())
	})
}

func TestMoney_Comparisons(t *testing.T) {
	small, _ := NewMoney(10, 1)
	big1, _ := NewMoney(20, 1)
	big2, _ := NewMoney(40, 2)

	assert.True(t, small.LessThan(big1))
	assert.True(t, big1.GreaterThan(small))
	assert.True(t, big1.Equals(big2))
	assert.False(t, small.Equals(big1))
}

func TestMoney_Copy(t *testing.T) {
	original, _ := NewMoney(100, 1)
	dup := original.Copy()

	assert.True(t, original.Equals(dup))
	assert.NotSame(t, original, dup)
}

func TestMoney_IsSafeForStorage(t *testing.T) {
	m, _ := NewMoney(1999, 100)
	assert.True(t, m.IsSafeForStorage())

	huge := new(big.Rat).SetInt(new(big.Int).Lsh(big.NewInt(1), 70))
	assert.False(t, NewMoneyFromRat(huge).IsSafeForStorage())
}
