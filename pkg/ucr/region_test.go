package ucr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegionTable(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []RegionEntry{
		{Code: 0, Name: "northeast"},
		{Code: 1, Name: "midwest"},
		{Code: 2, Name: "south"},
		{Code: 3, Name: "west"},
	}, RegionTable())
}

func TestRegionNameForCode(t *testing.T) {
	t.Parallel()

	name, err := RegionNameForCode(2)
	require.NoError(t, err)
	assert.Equal(t, RegionSouth, name)

	for _, code := range []int{-1, 4} {
		_, err := RegionNameForCode(code)
		require.ErrorIs(t, err, ErrUnknownRegion)

		regionErr := &UnknownRegionError{}
		require.ErrorAs(t, err, &regionErr)
		assert.True(t, regionErr.Numeric)
		assert.Equal(t, code, regionErr.Code)
	}
}

func TestCanonicalRegionName(t *testing.T) {
	t.Parallel()

	for input, want := range map[string]string{
		"south":       "south",
		"South":       "south",
		"NORTHEAST":   "northeast",
		"  Midwest  ": "midwest",
	} {
		got, err := CanonicalRegionName(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, got)
	}

	_, err := CanonicalRegionName("pacific")
	require.ErrorIs(t, err, ErrUnknownRegion)
}

func TestRegion(t *testing.T) {
	t.Parallel()

	t.Run("empty name does not resolve", func(t *testing.T) {
		t.Parallel()

		var region Region
		assert.True(t, region.IsZero())

		for _, empty := range []Region{region, RegionName(""), RegionName("  "), ParseRegion("")} {
			name, err := empty.Resolve()
			require.ErrorIs(t, err, ErrUnknownRegion)
			assert.Empty(t, name)
		}
	})

	t.Run("code zero is not absent", func(t *testing.T) {
		t.Parallel()

		region := RegionCode(0)
		assert.False(t, region.IsZero())

		name, err := region.Resolve()
		require.NoError(t, err)
		assert.Equal(t, RegionNortheast, name)
	})

	t.Run("name", func(t *testing.T) {
		t.Parallel()

		region := RegionName("West")
		_, numeric := region.Code()
		assert.False(t, numeric)
		assert.Equal(t, "West", region.String())

		name, err := region.Resolve()
		require.NoError(t, err)
		assert.Equal(t, RegionWest, name)
	})

	t.Run("parse", func(t *testing.T) {
		t.Parallel()

		code, numeric := ParseRegion(" 3 ").Code()
		assert.True(t, numeric)
		assert.Equal(t, 3, code)

		_, numeric = ParseRegion("south").Code()
		assert.False(t, numeric)

		assert.True(t, ParseRegion("").IsZero())

		_, err := ParseRegion("12").Resolve()
		require.ErrorIs(t, err, ErrUnknownRegion)
	})
}

func TestScope(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []Scope{ScopeNation, ScopeRegion, ScopeState, ScopeAgency}, Scopes())

	for _, scope := range Scopes() {
		assert.True(t, scope.Valid())
	}

	assert.False(t, Scope(-1).Valid())
	assert.False(t, Scope(4).Valid())
	assert.Equal(t, "agency", ScopeAgency.String())
	assert.Equal(t, "scope(4)", Scope(4).String())
}

func TestOffensesAndClassifications(t *testing.T) {
	t.Parallel()

	assert.Len(t, Offenses(), 11)
	assert.True(t, OffenseMotorVehicleTheft.Known())
	assert.True(t, AllOffenses.Known())
	assert.False(t, Offense("jaywalking").Known())

	assert.Len(t, Classifications(), 5)
	assert.True(t, ClassificationEthnicity.Known())
	assert.False(t, Classification("height").Known())
}
