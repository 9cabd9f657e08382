package twitterapi

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadOptional(t *testing.T) {
	raw := []byte(`{"lang":"en","empty":"","nothing":null,"count":"42","nested":{"n":7}}`)

	t.Run("Present", func(t *testing.T) {
		lang, err := readOptional(raw, asString, "lang")
		require.NoError(t, err)
		assert.Equal(t, Some("en"), lang)
	})

	t.Run("EmptyStringIsPresent", func(t *testing.T) {
		empty, err := readOptional(raw, asString, "empty")
		require.NoError(t, err)
		assert.True(t, empty.IsSet())
		assert.Equal(t, "", empty.MustGet())
	})

	t.Run("MissingAndNullAreAbsent", func(t *testing.T) {
		missing, err := readOptional(raw, asString, "source")
		require.NoError(t, err)
		assert.False(t, missing.IsSet())

		null, err := readOptional(raw, asString, "nothing")
		require.NoError(t, err)
		assert.False(t, null.IsSet())
	})

	t.Run("NumericString", func(t *testing.T) {
		count, err := readOptional(raw, asInt, "count")
		require.NoError(t, err)
		assert.Equal(t, 42, count.MustGet())
	})

	t.Run("NestedPath", func(t *testing.T) {
		n, err := readOptional(raw, asInt, "nested", "n")
		require.NoError(t, err)
		assert.Equal(t, 7, n.MustGet())
	})

	t.Run("WrongType", func(t *testing.T) {
		_, err := readOptional(raw, asInt, "lang")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrMalformedResponse)

		var malformedErr *MalformedResponseError
		require.True(t, errors.As(err, &malformedErr))
		assert.Equal(t, "lang", malformedErr.Field)
	})
}

func TestReadRequired(t *testing.T) {
	_, err := readRequired([]byte(`{"id":null}`), asString, "id")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedResponse)
	assert.Equal(t, "malformed response: missing id", err.Error())
}

func TestParseTimestamp(t *testing.T) {
	zulu, err := ParseTimestamp("2019-12-31T19:26:16.000Z")
	require.NoError(t, err)
	offset, err := ParseTimestamp("2019-12-31T19:26:16.000+00:00")
	require.NoError(t, err)

	assert.True(t, zulu.Equal(offset))
	assert.Equal(t, time.Date(2019, 12, 31, 19, 26, 16, 0, time.UTC), zulu)

	_, err = ParseTimestamp("31/12/2019")
	assert.Error(t, err)
}

func TestAsBool(t *testing.T) {
	raw := []byte(`{"a":true,"b":"false","c":"yes","d":1}`)

	a, err := readRequired(raw, asBool, "a")
	require.NoError(t, err)
	assert.True(t, a)

	b, err := readRequired(raw, asBool, "b")
	require.NoError(t, err)
	assert.False(t, b)

	_, err = readRequired(raw, asBool, "c")
	assert.ErrorIs(t, err, ErrMalformedResponse)

	_, err = readRequired(raw, asBool, "d")
	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestAsArrayPresence(t *testing.T) {
	raw := []byte(`{"empty":[],"full":["a","b"]}`)

	empty, err := readOptional(raw, asStrings, "empty")
	require.NoError(t, err)
	assert.Equal(t, Empty, PresenceOf(empty))

	full, err := readOptional(raw, asStrings, "full")
	require.NoError(t, err)
	assert.Equal(t, Populated, PresenceOf(full))
	assert.Equal(t, []string{"a", "b"}, full.MustGet())

	missing, err := readOptional(raw, asStrings, "missing")
	require.NoError(t, err)
	assert.Equal(t, NotFetched, PresenceOf(missing))
}

func TestAsArrayElementError(t *testing.T) {
	_, err := readOptional([]byte(`{"list":["a",3]}`), asStrings, "list")
	require.Error(t, err)

	var malformedErr *MalformedResponseError
	require.True(t, errors.As(err, &malformedErr))
	assert.Equal(t, "list.[1]", malformedErr.Field)
}

func TestAsEnumFailsClosed(t *testing.T) {
	_, err := readRequired([]byte(`{"type":"hologram"}`), asEnum("media type", MediaTypePhoto, MediaTypeVideo), "type")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownEnumValue)
	assert.NotErrorIs(t, err, ErrMalformedResponse)

	var enumErr *UnknownEnumValueError
	require.True(t, errors.As(err, &enumErr))
	assert.Equal(t, "hologram", enumErr.Value)
	assert.Equal(t, "type", enumErr.Field)
}

func TestOptional(t *testing.T) {
	var absent Optional[int]
	assert.False(t, absent.IsSet())
	assert.Equal(t, 5, absent.OrElse(5))
	assert.Panics(t, func() { absent.MustGet() })

	b, err := absent.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, "null", string(b))

	b, err = Some(3).MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, "3", string(b))

	assert.Equal(t, "not_fetched", NotFetched.String())
}
