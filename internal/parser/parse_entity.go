package parser

import (
	"fmt"
	"strconv"
	"time"

	"github.com/auraxsim/vitality/internal/model/core"
	"github.com/auraxsim/vitality/internal/util"
)

// ParsePlayer parses player registration data.
// Expected fields: captureFrame, objectID, name, faction, suit, health, armor.
func (p *Parser) ParsePlayer(data []string) (PlayerSpec, error) {
	var spec PlayerSpec

	// fix received data
	for i, v := range data {
		data[i] = util.FixEscapeQuotes(util.TrimQuotes(v))
	}

	if len(data) < 7 {
		return spec, fmt.Errorf("player data has %d fields, want 7", len(data))
	}

	capframe, err := strconv.ParseFloat(data[0], 64)
	if err != nil {
		return spec, fmt.Errorf("error converting capture frame to int: %w", err)
	}
	spec.Time = time.Now()
	spec.CaptureFrame = uint(capframe)

	objectID, err := parseUintFromFloat(data[1])
	if err != nil {
		return spec, fmt.Errorf("error converting object id to uint: %w", err)
	}
	spec.ObjectID = uint16(objectID)
	spec.Name = data[2]

	faction, err := parseUintFromFloat(data[3])
	if err != nil {
		return spec, fmt.Errorf("error converting faction to uint: %w", err)
	}
	spec.Faction = core.Faction(faction)

	suit, err := parseUintFromFloat(data[4])
	if err != nil {
		return spec, fmt.Errorf("error converting exo-suit to uint: %w", err)
	}
	spec.Suit = core.ExoSuit(suit)

	spec.Health, err = parseFloat32(data[5])
	if err != nil {
		return spec, fmt.Errorf("error converting health to float: %w", err)
	}
	spec.Armor, err = parseFloat32(data[6])
	if err != nil {
		return spec, fmt.Errorf("error converting armor to float: %w", err)
	}

	return spec, nil
}

// ParseVehicle parses vehicle registration data.
// Expected fields: captureFrame, objectID, name, faction, definition, health,
// shields.
func (p *Parser) ParseVehicle(data []string) (VehicleSpec, error) {
	var spec VehicleSpec

	// fix received data
	for i, v := range data {
		data[i] = util.FixEscapeQuotes(util.TrimQuotes(v))
	}

	if len(data) < 7 {
		return spec, fmt.Errorf("vehicle data has %d fields, want 7", len(data))
	}

	capframe, err := strconv.ParseFloat(data[0], 64)
	if err != nil {
		return spec, fmt.Errorf("error converting capture frame to int: %w", err)
	}
	spec.Time = time.Now()
	spec.CaptureFrame = uint(capframe)

	objectID, err := parseUintFromFloat(data[1])
	if err != nil {
		return spec, fmt.Errorf("error converting object id to uint: %w", err)
	}
	spec.ObjectID = uint16(objectID)
	spec.Name = data[2]

	faction, err := parseUintFromFloat(data[3])
	if err != nil {
		return spec, fmt.Errorf("error converting faction to uint: %w", err)
	}
	spec.Faction = core.Faction(faction)
	spec.Definition = data[4]

	spec.Health, err = parseFloat32(data[5])
	if err != nil {
		return spec, fmt.Errorf("error converting health to float: %w", err)
	}
	spec.Shields, err = parseFloat32(data[6])
	if err != nil {
		return spec, fmt.Errorf("error converting shields to float: %w", err)
	}

	return spec, nil
}

// ParseDeployable parses deployable registration data.
// Expected fields: captureFrame, objectID, definition, owner, faction,
// health, shields, complex. Turrets come in through ParseTurret instead.
func (p *Parser) ParseDeployable(data []string) (DeployableSpec, error) {
	spec, err := p.parseDeployableFields(data, 8)
	if err != nil {
		return spec, err
	}

	complexKind, err := strconv.ParseBool(data[7])
	if err != nil {
		return spec, fmt.Errorf("error converting complex flag to bool: %w", err)
	}
	if complexKind {
		spec.EntityKind = core.KindComplexDeployable
	} else {
		spec.EntityKind = core.KindSimpleDeployable
	}

	return spec, nil
}

// ParseTurret parses turret registration data.
// Expected fields: captureFrame, objectID, definition, owner, faction,
// health, shields.
func (p *Parser) ParseTurret(data []string) (DeployableSpec, error) {
	spec, err := p.parseDeployableFields(data, 7)
	if err != nil {
		return spec, err
	}
	spec.EntityKind = core.KindTurret
	return spec, nil
}

func (p *Parser) parseDeployableFields(data []string, want int) (DeployableSpec, error) {
	var spec DeployableSpec

	// fix received data
	for i, v := range data {
		data[i] = util.FixEscapeQuotes(util.TrimQuotes(v))
	}

	if len(data) < want {
		return spec, fmt.Errorf("deployable data has %d fields, want %d", len(data), want)
	}

	capframe, err := strconv.ParseFloat(data[0], 64)
	if err != nil {
		return spec, fmt.Errorf("error converting capture frame to int: %w", err)
	}
	spec.Time = time.Now()
	spec.CaptureFrame = uint(capframe)

	objectID, err := parseUintFromFloat(data[1])
	if err != nil {
		return spec, fmt.Errorf("error converting object id to uint: %w", err)
	}
	spec.ObjectID = uint16(objectID)
	spec.Definition = data[2]
	spec.Owner = data[3]

	faction, err := parseUintFromFloat(data[4])
	if err != nil {
		return spec, fmt.Errorf("error converting faction to uint: %w", err)
	}
	spec.Faction = core.Faction(faction)

	spec.Health, err = parseFloat32(data[5])
	if err != nil {
		return spec, fmt.Errorf("error converting health to float: %w", err)
	}
	spec.Shields, err = parseFloat32(data[6])
	if err != nil {
		return spec, fmt.Errorf("error converting shields to float: %w", err)
	}

	return spec, nil
}

// ParseRemove parses entity removal data.
// Expected fields: captureFrame, objectID.
func (p *Parser) ParseRemove(data []string) (RemoveSpec, error) {
	var spec RemoveSpec

	// fix received data
	for i, v := range data {
		data[i] = util.FixEscapeQuotes(util.TrimQuotes(v))
	}

	if len(data) < 2 {
		return spec, fmt.Errorf("remove data has %d fields, want 2", len(data))
	}

	capframe, err := strconv.ParseFloat(data[0], 64)
	if err != nil {
		return spec, fmt.Errorf("error converting capture frame to int: %w", err)
	}
	spec.CaptureFrame = uint(capframe)

	objectID, err := parseUintFromFloat(data[1])
	if err != nil {
		return spec, fmt.Errorf("error converting object id to uint: %w", err)
	}
	spec.ObjectID = uint16(objectID)

	return spec, nil
}
