package main

import (
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/auraxsim/vitality/internal/dispatcher"
)

// runDemo drives a short scripted session through the dispatcher so the
// pipeline can be exercised without a live event feed.
func runDemo(d *dispatcher.Dispatcher, logger *slog.Logger) {
	logger.Info("Running demo session")

	send := func(command string, args ...string) {
		if err := d.Dispatch(dispatcher.Event{Command: command, Args: args}); err != nil {
			logger.Warn("Demo event failed", "command", command, "error", err)
		}
	}

	send(":SESSION:START:", "demo_session", "demo_server")

	// a squad of infantry
	send(":NEW:PLAYER:", "0", "10", "Kestrel", "1", "1", "100", "50")
	send(":NEW:PLAYER:", "0", "11", "Vireo", "2", "2", "100", "50")
	send(":NEW:PLAYER:", "0", "12", "Shrike", "3", "4", "100", "0")

	// vehicles and emplacements
	send(":NEW:VEHICLE:", "5", "20", "Wasp Lead", "1", "light_skimmer", "500", "150")
	send(":NEW:DEPLOYABLE:", "5", "30", "motion_sensor", "Kestrel", "1", "80", "0", "false")
	send(":NEW:DEPLOYABLE:", "5", "31", "shield_generator", "Vireo", "2", "200", "120", "true")
	send(":NEW:TURRET:", "5", "32", "plasma_turret", "Shrike", "3", "300", "100")

	weapons := []string{"suppressor", "cycler", "bolt_driver", "rocklet", "flux_cannon"}
	targets := []string{"10", "11", "12", "20", "30", "31", "32"}

	frame := 10
	for i := 0; i < 60; i++ {
		frame += rand.Intn(5)
		weapon := weapons[rand.Intn(len(weapons))]
		target := targets[rand.Intn(len(targets))]
		distance := fmt.Sprintf("%.1f", 5+rand.Float64()*120)
		splash := "false"
		if weapon == "rocklet" && rand.Intn(3) == 0 {
			splash = "true"
		}

		send(":HIT:",
			fmt.Sprintf("%d", frame),
			target,
			"10", "Kestrel",
			weapon, "standard_mag", "auto",
			"[100.0,200.0,10.0]", "[105.0,210.0,10.0]",
			distance, splash,
		)
	}

	// buffered hit handlers drain asynchronously
	time.Sleep(500 * time.Millisecond)

	send(":SESSION:END:")
	logger.Info("Demo session complete")
}
