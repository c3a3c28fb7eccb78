package querybuilder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConditionalUpdate_OnlyPresentFields(t *testing.T) {
	builder, err := ConditionalUpdate(
		TableTeams,
		int64(3),
		[]*string{Field("name", true), Field("slug", true), Field("description", false)},
		[]any{Value("Foo", true), Value("foo", true), Value("", false)},
	)
	require.NoError(t, err)

	query, args, err := builder.ToSQL()
	require.NoError(t, err)

	assert.Equal(t, "UPDATE teams SET name = $1, slug = $2 WHERE id = $3 RETURNING *", query)
	assert.Equal(t, []any{"Foo", "foo", int64(3)}, args)
}

func TestConditionalUpdate_NoFields(t *testing.T) {
	_, err := ConditionalUpdate(TableTeams, int64(1), []*string{nil, nil}, []any{nil, nil})
	require.ErrorIs(t, err, ErrNoFields)
}

func TestConditionalUpdate_LengthMismatchAfterFiltering(t *testing.T) {
	_, err := ConditionalUpdate(
		TableTeams,
		int64(1),
		[]*string{Field("name", true), Field("slug", true)},
		[]any{"Foo", nil},
	)
	require.ErrorIs(t, err, ErrFieldValueMismatch)
}

func TestConditionalUpdate_TypedNilPointerIsAbsent(t *testing.T) {
	var missing *string
	_, err := ConditionalUpdate(
		TableTeams,
		int64(1),
		[]*string{Field("description", true)},
		[]any{missing},
	)
	require.ErrorIs(t, err, ErrFieldValueMismatch)
}

func TestConditionalUpdate_ZeroValuesArePresent(t *testing.T) {
	builder, err := ConditionalUpdate(
		TableGames,
		int64(9),
		[]*string{Field("home_score", true)},
		[]any{0},
	)
	require.NoError(t, err)

	query, args, err := builder.ToSQL()
	require.NoError(t, err)
	assert.Equal(t, "UPDATE games SET home_score = $1 WHERE id = $2 RETURNING *", query)
	assert.Equal(t, []any{0, int64(9)}, args)
}

func TestConditionalUpdate_RejectsUntrustedIdentifiers(t *testing.T) {
	t.Run("field", func(t *testing.T) {
		_, err := ConditionalUpdate(TableTeams, int64(1), []*string{Field("name = 'x'; --", true)}, []any{"x"})
		require.ErrorIs(t, err, ErrInvalidIdentifier)
	})

	t.Run("table", func(t *testing.T) {
		_, err := ConditionalUpdate(Table("teams; DROP TABLE teams"), int64(1), []*string{Field("name", true)}, []any{"x"})
		require.ErrorIs(t, err, ErrInvalidIdentifier)
	})
}
