package geolib_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/9seconds/geoframe/geolib"
)

func TestValueNull(t *testing.T) {
	v := geolib.Null()

	assert.True(t, v.IsNull())
	assert.Equal(t, geolib.ValueNull, v.Kind())
	assert.Nil(t, v.Interface())
	assert.Equal(t, "", v.String())
	assert.Equal(t, geolib.Value{}, v)
}

func TestValueAccessors(t *testing.T) {
	s := geolib.NewString("London")
	f := geolib.NewFloat(-0.0931)
	i := geolib.NewInt(50)

	str, ok := s.Str()
	assert.True(t, ok)
	assert.Equal(t, "London", str)

	_, ok = s.Float()
	assert.False(t, ok)

	num, ok := f.Float()
	assert.True(t, ok)
	assert.Equal(t, -0.0931, num)

	_, ok = f.Int()
	assert.False(t, ok)

	integ, ok := i.Int()
	assert.True(t, ok)
	assert.EqualValues(t, 50, integ)

	assert.Equal(t, "London", s.Interface())
	assert.Equal(t, -0.0931, f.Interface())
	assert.Equal(t, int64(50), i.Interface())
}

func TestValueString(t *testing.T) {
	assert.Equal(t, "29.9787", geolib.NewFloat(29.9787).String())
	assert.Equal(t, "-95.5728", geolib.NewFloat(-95.5728).String())
	assert.Equal(t, "1", geolib.NewFloat(1).String())
	assert.Equal(t, "1000", geolib.NewInt(1000).String())
	assert.Equal(t, "EC2V", geolib.NewString("EC2V").String())
}
