package gen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSnake(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"ACLineSegment", "ac_line_segment"},
		{"SeasonDayTypeSchedule", "season_day_type_schedule"},
		{"Element", "element"},
		{"PerLengthSequenceImpedance", "per_length_sequence_impedance"},
		{"mRID", "m_r_id"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, snake(tt.input))
		})
	}
}

func TestPascal(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"uuid", "UUID"},
		{"cutLevel1", "CutLevel1"},
		{"energyConsumers", "EnergyConsumers"},
		{"loadResponse", "LoadResponse"},
		{"mRID", "MRID"},
		{"pfixed", "Pfixed"},
		{"season", "Season"},
		{"ACLineSegment", "ACLineSegment"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, pascal(tt.input))
		})
	}
}

func TestCamel(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Season", "season"},
		{"ACLineSegment", "acLineSegment"},
		{"uuid", "uuid"},
		{"violationLimits", "violationLimits"},
		{"EnergyConsumer", "energyConsumer"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, camel(tt.input))
		})
	}
}

func TestUnexported(t *testing.T) {
	assert.Equal(t, "season", unexported("season"))
	assert.Equal(t, "_type", unexported("type"))
	assert.Equal(t, "_range", unexported("Range"))
}

func TestEnumConst(t *testing.T) {
	tests := []struct {
		enum, value string
		expected    string
	}{
		{"SeasonName", "spring", "SeasonNameSpring"},
		{"Unit", "kV", "UnitKV"},
		{"Phase", "AB", "PhaseAB"},
		{"Kind", "non-conform", "KindNonConform"},
		{"Kind", "---", "Kind"},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.expected, enumConst(tt.enum, tt.value))
		})
	}
}

func TestDocLines(t *testing.T) {
	assert.Nil(t, docLines(" \n "))
	assert.Equal(t, []string{"One line."}, docLines("One line.\n"))
	assert.Equal(t, []string{"First.", "Second."}, docLines("First.\nSecond."))

	lines := docLines(strings.Repeat("word ", 20))
	assert.Equal(t, []string{
		strings.TrimSpace(strings.Repeat("word ", 15)),
		strings.TrimSpace(strings.Repeat("word ", 5)),
	}, lines)
}
