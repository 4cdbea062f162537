package parser

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/auraxsim/vitality/internal/model/core"
)

func newTestParser() *Parser {
	return NewParser(slog.Default())
}

func TestParsePlayer(t *testing.T) {
	p := newTestParser()

	tests := []struct {
		name    string
		input   []string
		check   func(t *testing.T, s PlayerSpec)
		wantErr bool
	}{
		{
			name:  "basic player",
			input: []string{"100", "10", "Kestrel", "1", "2", "100", "50"},
			check: func(t *testing.T, s PlayerSpec) {
				assert.Equal(t, uint(100), s.CaptureFrame)
				assert.Equal(t, uint16(10), s.ObjectID)
				assert.Equal(t, "Kestrel", s.Name)
				assert.Equal(t, core.FactionCrimson, s.Faction)
				assert.Equal(t, core.ExoSuitReinforced, s.Suit)
				assert.Equal(t, float32(100), s.Health)
				assert.Equal(t, float32(50), s.Armor)
			},
		},
		{
			name:  "quoted fields with float object id",
			input: []string{"7.00", `"12.00"`, `"Vireo"`, "2", "0", "80.5", "0"},
			check: func(t *testing.T, s PlayerSpec) {
				assert.Equal(t, uint(7), s.CaptureFrame)
				assert.Equal(t, uint16(12), s.ObjectID)
				assert.Equal(t, "Vireo", s.Name)
				assert.Equal(t, core.FactionAzure, s.Faction)
				assert.Equal(t, float32(80.5), s.Health)
			},
		},
		{
			name:    "too few fields",
			input:   []string{"100", "10", "Kestrel"},
			wantErr: true,
		},
		{
			name:    "bad health",
			input:   []string{"100", "10", "Kestrel", "1", "2", "abc", "50"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := p.ParsePlayer(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			tt.check(t, got)
		})
	}
}

func TestParseVehicle(t *testing.T) {
	p := newTestParser()

	got, err := p.ParseVehicle([]string{"5", "20", "Wasp Lead", "1", "light_skimmer", "500", "150"})
	require.NoError(t, err)

	assert.Equal(t, uint(5), got.CaptureFrame)
	assert.Equal(t, uint16(20), got.ObjectID)
	assert.Equal(t, "Wasp Lead", got.Name)
	assert.Equal(t, core.FactionCrimson, got.Faction)
	assert.Equal(t, "light_skimmer", got.Definition)
	assert.Equal(t, float32(500), got.Health)
	assert.Equal(t, float32(150), got.Shields)
}

func TestParseDeployable(t *testing.T) {
	p := newTestParser()

	tests := []struct {
		name     string
		input    []string
		wantKind core.Kind
		wantErr  bool
	}{
		{
			name:     "simple deployable",
			input:    []string{"5", "30", "motion_sensor", "Kestrel", "1", "80", "0", "false"},
			wantKind: core.KindSimpleDeployable,
		},
		{
			name:     "complex deployable",
			input:    []string{"5", "31", "shield_generator", "Vireo", "2", "200", "120", "true"},
			wantKind: core.KindComplexDeployable,
		},
		{
			name:    "bad complex flag",
			input:   []string{"5", "31", "shield_generator", "Vireo", "2", "200", "120", "maybe"},
			wantErr: true,
		},
		{
			name:    "too few fields",
			input:   []string{"5", "31"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := p.ParseDeployable(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantKind, got.EntityKind)
		})
	}
}

func TestParseTurret(t *testing.T) {
	p := newTestParser()

	got, err := p.ParseTurret([]string{"5", "32", "plasma_turret", "Shrike", "3", "300", "100"})
	require.NoError(t, err)

	assert.Equal(t, core.KindTurret, got.EntityKind)
	assert.Equal(t, uint16(32), got.ObjectID)
	assert.Equal(t, "plasma_turret", got.Definition)
	assert.Equal(t, "Shrike", got.Owner)
	assert.Equal(t, float32(300), got.Health)
	assert.Equal(t, float32(100), got.Shields)
}

func TestParseRemove(t *testing.T) {
	p := newTestParser()

	got, err := p.ParseRemove([]string{"200", "10"})
	require.NoError(t, err)
	assert.Equal(t, uint(200), got.CaptureFrame)
	assert.Equal(t, uint16(10), got.ObjectID)

	_, err = p.ParseRemove([]string{"200"})
	require.Error(t, err)
}
