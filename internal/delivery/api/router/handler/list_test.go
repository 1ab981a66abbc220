package handler

import (
	"testing"

	domainerrors "foodsafe/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseList(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{name: "empty", raw: "", want: nil},
		{name: "blank", raw: "   ", want: nil},
		{name: "single", raw: "Kitchen", want: []string{"Kitchen"}},
		{name: "comma separated is trimmed", raw: " Ravi ,Meena,  Joe", want: []string{"Ravi", "Meena", "Joe"}},
		{name: "empty entries keep their position", raw: "a,,b", want: []string{"a", "", "b"}},
		{name: "json array", raw: `["Head Chef", " Server "]`, want: []string{"Head Chef", "Server"}},
		{name: "json array may contain commas", raw: `["Cold storage, north", "Bakery"]`, want: []string{"Cold storage, north", "Bakery"}},
		{name: "empty json array", raw: `[]`, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseList("team_member_names", tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseList_MalformedJSON(t *testing.T) {
	for _, raw := range []string{`["a"`, `[1, 2]`, `[{"name":"a"}]`} {
		_, err := parseList("facility_photo_area_names", raw)
		require.Error(t, err, raw)
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		assert.Contains(t, err.Error(), "facility_photo_area_names")
	}
}
