package parser

import (
	"fmt"
	"strconv"
	"time"

	"github.com/auraxsim/vitality/internal/model/core"
	"github.com/auraxsim/vitality/internal/util"
)

// ParseHit parses a projectile hit event.
// Expected fields: captureFrame, targetID, attackerID, attackerName, weapon,
// magazine, fireMode, origin, impact, distance, splash.
func (p *Parser) ParseHit(data []string) (HitReport, error) {
	var report HitReport

	// fix received data
	for i, v := range data {
		data[i] = util.FixEscapeQuotes(util.TrimQuotes(v))
	}

	if len(data) < 11 {
		return report, fmt.Errorf("hit data has %d fields, want 11", len(data))
	}

	capframe, err := strconv.ParseFloat(data[0], 64)
	if err != nil {
		return report, fmt.Errorf("error converting capture frame to int: %w", err)
	}
	report.Time = time.Now()
	report.CaptureFrame = uint(capframe)

	targetID, err := parseUintFromFloat(data[1])
	if err != nil {
		return report, fmt.Errorf("error converting target id to uint: %w", err)
	}
	report.TargetID = uint16(targetID)

	attackerID, err := parseUintFromFloat(data[2])
	if err != nil {
		return report, fmt.Errorf("error converting attacker id to uint: %w", err)
	}
	report.Projectile.AttackerID = uint16(attackerID)
	report.Projectile.Attacker = data[3]
	report.Projectile.Weapon = data[4]
	report.Projectile.Magazine = data[5]
	report.Projectile.FireMode = data[6]

	ox, oy, oz, err := util.ParseVector3(data[7])
	if err != nil {
		return report, fmt.Errorf("error converting origin to vector: %w", err)
	}
	report.Projectile.Origin = core.Vector3{X: ox, Y: oy, Z: oz}

	ix, iy, iz, err := util.ParseVector3(data[8])
	if err != nil {
		return report, fmt.Errorf("error converting impact to vector: %w", err)
	}
	report.Projectile.Impact = core.Vector3{X: ix, Y: iy, Z: iz}

	report.Projectile.Distance, err = parseFloat32(data[9])
	if err != nil {
		return report, fmt.Errorf("error converting distance to float: %w", err)
	}

	report.Projectile.Splash, err = strconv.ParseBool(data[10])
	if err != nil {
		return report, fmt.Errorf("error converting splash flag to bool: %w", err)
	}

	return report, nil
}
