package model

import (
	"strings"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseName(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name     string
		raw      string
		parse    func(string) (Name, error)
		want     string
		wantCode string
	}

	tests := []testCase{
		{name: "plain part name", raw: "M3 Bolt", parse: ParsePartName, want: "M3 Bolt"},
		{name: "trimmed project name", raw: "  Desk Organizer\t\n", parse: ParseProjectName, want: "Desk Organizer"},
		{name: "empty part name", raw: "", parse: ParsePartName, wantCode: "part.name.too-short"},
		{name: "blank project name", raw: " \t ", parse: ParseProjectName, wantCode: "project.name.too-short"},
		{name: "exactly max bytes", raw: strings.Repeat("a", NameMaxBytes), parse: ParsePartName, want: strings.Repeat("a", NameMaxBytes)},
		{name: "max bytes after trim", raw: "  " + strings.Repeat("b", NameMaxBytes) + "  ", parse: ParseProjectName, want: strings.Repeat("b", NameMaxBytes)},
		{name: "one byte too long", raw: strings.Repeat("a", NameMaxBytes+1), parse: ParsePartName, wantCode: "part.name.too-long"},
		// 101 two-byte runes: 101 characters but 202 bytes.
		{name: "multibyte counted in bytes", raw: strings.Repeat("é", 101), parse: ParseProjectName, wantCode: "project.name.too-long"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := tt.parse(tt.raw)
			if tt.wantCode != "" {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrValidation)

				var vErr *ValidationError
				require.ErrorAs(t, err, &vErr)
				assert.Equal(t, "name", vErr.Attribute)
				assert.Equal(t, tt.wantCode, vErr.Code)
				assert.NotEmpty(t, vErr.Message)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestParseNameAcceptsIffTrimmedLengthInRange(t *testing.T) {
	t.Parallel()

	for i := 0; i < 200; i++ {
		raw := strings.Repeat(" ", gofakeit.IntRange(0, 3)) +
			gofakeit.LetterN(uint(gofakeit.IntRange(0, NameMaxBytes+20))) +
			strings.Repeat(" ", gofakeit.IntRange(0, 3))
		trimmed := strings.TrimSpace(raw)

		got, err := ParsePartName(raw)
		if len(trimmed) >= 1 && len(trimmed) <= NameMaxBytes {
			require.NoError(t, err, "raw %q", raw)
			assert.Equal(t, trimmed, got.String())
		} else {
			require.Error(t, err, "raw %q", raw)
		}
	}
}

func TestValidationErrorsMatchErrValidation(t *testing.T) {
	t.Parallel()

	errs := ValidationErrors{
		*NewValidationError("name", "project.name.too-short", "project name is too short"),
		*NewValidationError("parts[1].part", "project.parts.duplicate", "part is listed twice"),
	}

	assert.ErrorIs(t, errs, ErrValidation)
	assert.NotErrorIs(t, errs, ErrGeneral)
	assert.Contains(t, errs.Error(), "invalid name value")
	assert.Contains(t, errs.Error(), "invalid parts[1].part value")
}

func TestProjectDefinePartsReplaces(t *testing.T) {
	t.Parallel()

	name, err := ParseProjectName("Desk Organizer")
	require.NoError(t, err)

	p, err := NewProject(name, gofakeit.Date())
	require.NoError(t, err)
	assert.Empty(t, p.Parts)
	assert.Equal(t, uuid.Version(7), p.ID.Version())

	first := []ProjectPart{{PartID: mustPartID(t), Quantity: 12}, {PartID: mustPartID(t), Quantity: 0}}
	p.DefineParts(first)
	assert.Equal(t, first, p.Parts)

	second := []ProjectPart{{PartID: mustPartID(t), Quantity: 3}}
	p.DefineParts(second)
	assert.Equal(t, second, p.Parts)

	second[0].Quantity = 99
	assert.Equal(t, uint32(3), p.Parts[0].Quantity, "BOM must not alias the caller's slice")
}

func mustPartID(t *testing.T) uuid.UUID {
	t.Helper()

	name, err := ParsePartName(gofakeit.ProductName())
	require.NoError(t, err)
	part, err := NewPart(name)
	require.NoError(t, err)
	return part.ID
}
