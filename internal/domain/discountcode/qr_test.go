//go:build unit

package discountcode_test

import (
	"strings"
	"testing"

	"employee-discount/internal/domain/discountcode"
	"employee-discount/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQRCodec(t *testing.T) {
	format := discountcode.DefaultFormat()
	codec := discountcode.NewQRCodec("signing-key", format)
	code := builder.NewDiscountCodeBuilder().BuildDomain()

	t.Run("round trip carries the code id", func(t *testing.T) {
		payload := codec.Encode(code)
		assert.True(t, strings.HasPrefix(payload, "EDC1.ABC123."))
		assert.Len(t, strings.Split(payload, "."), 4)

		ref, err := codec.Decode(payload)
		require.NoError(t, err)
		require.NotNil(t, ref.ID)
		assert.Equal(t, code.ID(), *ref.ID)
		assert.Equal(t, code.ManualCode(), ref.Manual)
	})

	t.Run("lowercase payload still verifies", func(t *testing.T) {
		ref, err := codec.Decode(strings.ToLower(codec.Encode(code)))
		require.NoError(t, err)
		require.NotNil(t, ref.ID)
		assert.Equal(t, code.ID(), *ref.ID)
	})

	t.Run("manual code input has no id", func(t *testing.T) {
		ref, err := codec.Decode("EDC-abc123")
		require.NoError(t, err)
		assert.Nil(t, ref.ID)
		assert.Equal(t, discountcode.ManualCode("ABC123"), ref.Manual)
	})

	t.Run("swapped manual code is rejected", func(t *testing.T) {
		parts := strings.Split(codec.Encode(code), ".")
		parts[1] = "XYZ789"
		_, err := codec.Decode(strings.Join(parts, "."))
		assert.ErrorIs(t, err, discountcode.ErrQRSignatureMismatch)
	})

	t.Run("swapped code id is rejected", func(t *testing.T) {
		other := builder.NewDiscountCodeBuilder().BuildDomain()
		parts := strings.Split(codec.Encode(code), ".")
		parts[2] = other.ID().String()
		_, err := codec.Decode(strings.Join(parts, "."))
		assert.ErrorIs(t, err, discountcode.ErrQRSignatureMismatch)
	})

	t.Run("different key is rejected", func(t *testing.T) {
		foreign := discountcode.NewQRCodec("other-key", format)
		_, err := codec.Decode(foreign.Encode(code))
		assert.ErrorIs(t, err, discountcode.ErrQRSignatureMismatch)
	})

	t.Run("garbage id is malformed", func(t *testing.T) {
		_, err := codec.Decode("EDC1.ABC123.not-a-uuid.AAAA")
		assert.ErrorIs(t, err, discountcode.ErrMalformedCode)
	})

	t.Run("long keys are accepted", func(t *testing.T) {
		long := discountcode.NewQRCodec(strings.Repeat("k", 200), format)
		_, err := long.Decode(long.Encode(code))
		assert.NoError(t, err)
	})
}
