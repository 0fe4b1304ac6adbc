package codec

import (
	"math"
	"math/big"

	"github.com/shopspring/decimal"

	"github.com/wippyai/amqp-codec/errors"
)

var bigTen = big.NewInt(10)

// EncodeDecimal writes d as an unsigned scale octet followed by a signed
// 32-bit mantissa, with d = mantissa × 10^-scale. d is first reduced to its
// minimal scale, so 1.50 is sent as (1, 15) and 100.00 as (0, 100).
func (c *Codec) EncodeDecimal(d decimal.Decimal) error {
	scale, mantissa, err := decimalParts(d)
	if err != nil {
		return err
	}
	if err := c.writeU8(scale); err != nil {
		return err
	}
	return c.writeU32(uint32(mantissa))
}

// DecodeDecimal reads a scale octet and a signed 32-bit mantissa.
func (c *Codec) DecodeDecimal() (decimal.Decimal, error) {
	scale, err := c.readU8()
	if err != nil {
		return decimal.Decimal{}, err
	}
	raw, err := c.readU32()
	if err != nil {
		return decimal.Decimal{}, err
	}
	return decimal.New(int64(int32(raw)), -int32(scale)), nil
}

func decimalParts(d decimal.Decimal) (uint8, int32, error) {
	coef := new(big.Int).Set(d.Coefficient())
	exp := d.Exponent()

	if coef.Sign() == 0 {
		return 0, 0, nil
	}

	q, r := new(big.Int), new(big.Int)
	for exp < 0 {
		q.QuoRem(coef, bigTen, r)
		if r.Sign() != 0 {
			break
		}
		coef.Set(q)
		exp++
	}

	if exp > 0 {
		// 10^10 already exceeds any int32 mantissa
		if exp > 9 {
			return 0, 0, decimalOverflow(d)
		}
		coef.Mul(coef, new(big.Int).Exp(bigTen, big.NewInt(int64(exp)), nil))
		exp = 0
	}

	if -exp > math.MaxUint8 {
		return 0, 0, decimalOverflow(d)
	}
	if !coef.IsInt64() || coef.Int64() < math.MinInt32 || coef.Int64() > math.MaxInt32 {
		return 0, 0, decimalOverflow(d)
	}
	return uint8(-exp), int32(coef.Int64()), nil
}

func decimalOverflow(d decimal.Decimal) error {
	return errors.New(errors.PhaseEncode, errors.KindOverflow).
		GoType("decimal.Decimal").
		WireType(KindDecimal.String()).
		Value(d.String()).
		Detail("%s does not fit a 32-bit mantissa with scale 0-255", d.String()).
		Build()
}

func asDecimal(v any) (decimal.Decimal, bool) {
	switch d := v.(type) {
	case decimal.Decimal:
		return d, true
	case *decimal.Decimal:
		if d != nil {
			return *d, true
		}
	}
	return decimal.Decimal{}, false
}
