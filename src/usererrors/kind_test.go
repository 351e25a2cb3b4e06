package usererrors_test

import (
	"simassert/src/usererrors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEveryKindHasATemplate(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	kinds := usererrors.Kinds()
	assert.Len(kinds, 39)
	for _, kind := range kinds {
		assert.True(kind.Valid(), kind.String())
		assert.NotEmpty(kind.Template(), "classification %s has no template", kind)
		assert.Equal(strings.TrimSpace(kind.Template()), kind.Template(), "template of %s carries separators", kind)
		assert.NotContains(kind.Template(), "  ", "template of %s contains double spaces", kind)
	}
}

func TestKindNamesRoundTrip(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	for _, kind := range usererrors.Kinds() {
		parsed, err := usererrors.ParseKind(kind.String())
		assert.NoError(err)
		assert.Equal(kind, parsed)
	}
}

func TestParseKindIsLenient(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	kind, err := usererrors.ParseKind(" cannot-be-negative ")
	assert.NoError(err)
	assert.Equal(usererrors.KindCannotBeNegative, kind)

	_, err = usererrors.ParseKind("MUST_BE_PURPLE")
	assert.Error(err)
}

func TestInvalidKind(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	kind := usererrors.Kind(1000)
	assert.False(kind.Valid())
	assert.Equal("Kind(1000)", kind.String())
	assert.Panics(func() { _ = kind.Template() })
	_, err := kind.MarshalText()
	assert.Error(err)
}

func TestKindTextMarshaling(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	data, err := usererrors.KindUnknownGroupId.MarshalText()
	assert.NoError(err)
	assert.Equal("UNKNOWN_GROUP_ID", string(data))

	var kind usererrors.Kind
	assert.NoError(kind.UnmarshalText([]byte("IS_DEPRECATED")))
	assert.Equal(usererrors.KindIsDeprecated, kind)
	assert.Error(kind.UnmarshalText([]byte("NOPE")))
	assert.Equal(usererrors.KindIsDeprecated, kind, "a failed unmarshal leaves the value untouched")
}
