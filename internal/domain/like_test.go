package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLikeTarget_Constructors(t *testing.T) {
	p := PlaceTarget("p-1")
	assert.Equal(t, LikeTargetPlace, p.Kind())
	assert.Equal(t, "p-1", p.ID())
	assert.False(t, p.IsZero())

	r := RouteTarget("r-1")
	assert.Equal(t, LikeTargetRoute, r.Kind())
	assert.Equal(t, "r-1", r.ID())
	assert.False(t, r.IsZero())
}

func TestLikeTarget_ZeroValueIsInvalid(t *testing.T) {
	var zero LikeTarget
	assert.True(t, zero.IsZero())
}
