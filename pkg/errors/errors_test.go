package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithContext(t *testing.T) {
	assert.Nil(t, WithContext(nil, "ignored"))

	err := WithContext(WithContext(New("cause %d", 1), "inner"), "outer")
	assert.EqualError(t, err, "outer: inner: cause 1")
	assert.Equal(t, New("cause 1"), RootCause(err))
}

func TestGetPrintableMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		exp  string
	}{
		{
			name: "plain",
			err:  WithContext(New("boom"), "list submissions"),
			exp:  "list submissions: boom",
		},
		{
			name: "friendly",
			err:  WithContext(NewFriendlyError("fix %s", "it"), "parse"),
			exp:  "fix it",
		},
		{
			name: "invalid session",
			err:  WithContext(ErrInvalidSession, "authenticate"),
			exp:  ErrInvalidSession.Error(),
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.exp, GetPrintableMessage(test.err))
		})
	}
}

func TestIsTransient(t *testing.T) {
	transient := Transient{Op: "list submissions", Err: New("502 Bad Gateway")}
	assert.True(t, IsTransient(transient))
	assert.True(t, IsTransient(WithContext(transient, "page 2")))
	assert.False(t, IsTransient(New("other")))
	assert.EqualError(t, transient, "list submissions: 502 Bad Gateway")
}
