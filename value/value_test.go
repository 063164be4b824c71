/*
File    : loxwalk/value/value_test.go
*/
package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsTruthy(t *testing.T) {
	assert.False(t, Nil(nil).IsTruthy())
	assert.False(t, Boolean(false, nil).IsTruthy())
	assert.True(t, Boolean(true, nil).IsTruthy())
	assert.True(t, Number(0, nil).IsTruthy())
	assert.True(t, String("", nil).IsTruthy())
}

func TestString_NumberIsMinimal(t *testing.T) {
	assert.Equal(t, "65", Number(65, nil).String())
	assert.Equal(t, "65.5", Number(65.5, nil).String())
}

func TestString_Others(t *testing.T) {
	assert.Equal(t, "true", Boolean(true, nil).String())
	assert.Equal(t, "false", Boolean(false, nil).String())
	assert.Equal(t, "nil", Nil(nil).String())
	assert.Equal(t, "hello", String("hello", nil).String())
}

func TestEqual_SameKind(t *testing.T) {
	assert.True(t, Equal(Number(1, nil), Number(1, nil)))
	assert.False(t, Equal(Number(1, nil), Number(2, nil)))
	assert.True(t, Equal(String("a", nil), String("a", nil)))
	assert.True(t, Equal(Nil(nil), Nil(nil)))
	assert.True(t, Equal(Boolean(true, nil), Boolean(true, nil)))
}

func TestEqual_CrossKindNeverErrors(t *testing.T) {
	assert.False(t, Equal(Number(1, nil), String("1", nil)))
	assert.False(t, Equal(Nil(nil), Boolean(false, nil)))
	assert.False(t, Equal(String("true", nil), Boolean(true, nil)))
}
