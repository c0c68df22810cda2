package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaskSemantics(t *testing.T) {
	ball := MaskOf(CategoryBarrier, CategoryBrick, CategoryPaddle)

	assert.True(t, ball.Has(CategoryBrick))
	assert.False(t, ball.Has(CategoryBall))
	assert.False(t, ball.Has(CategoryNone), "none is never a member")

	assert.Equal(t, Mask(0b1110), ball, "bits follow enum order starting at ball")
	assert.True(t, ball.Any(CategoryPaddle.Bit()))
	assert.False(t, ball.Any(MaskOf(CategoryCoin, CategoryHouse)))

	assert.Equal(t, MaskOf(CategoryBarrier, CategoryPaddle), ball.Without(CategoryBrick))
	assert.Equal(t, ball, ball.Without(CategoryBrick).With(CategoryBrick))
}

func TestMaskString(t *testing.T) {
	assert.Equal(t, "none", Mask(0).String())
	assert.Equal(t, "front|left", MaskOf(CategoryLeft, CategoryFront).String())
	assert.Equal(t, "unknown", Category(200).String())
	assert.Equal(t, Mask(0), Category(200).Bit())
}
