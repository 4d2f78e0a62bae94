package ptsd_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ava12/ptsd"
	"github.com/ava12/ptsd/source"
)

func TestLexErrorIncludesPosition(t *testing.T) {
	src := source.New("foo.thrift", []byte("abc\ndef"))
	sp := source.NewSpan(src, 4, 5)
	err := ptsd.NewLexError(sp, "bad token %q", "d")
	assert.Contains(t, err.Error(), "bad token \"d\"")
	assert.Contains(t, err.Error(), "foo.thrift")
	assert.Contains(t, err.Error(), "line 2")
}

func TestParseErrorWithoutSpanOmitsPosition(t *testing.T) {
	err := ptsd.NewParseError(source.Span{}, "unexpected end")
	assert.Equal(t, "unexpected end", err.Error())
}

func TestLookupErrorIsPlainMessage(t *testing.T) {
	err := ptsd.NewLookupError("name %q not found", "Foo")
	assert.Equal(t, `name "Foo" not found`, err.Error())
}

func TestIOErrorUnwraps(t *testing.T) {
	inner := errors.New("permission denied")
	err := ptsd.NewIOError("/tmp/x.thrift", inner)
	assert.ErrorIs(t, err, inner)
	assert.Contains(t, err.Error(), "/tmp/x.thrift")
}
