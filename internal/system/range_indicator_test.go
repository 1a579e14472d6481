package system

import (
	"math"
	"testing"

	"curve-defense/internal/config"
	"curve-defense/internal/defs"
	"curve-defense/pkg/geom"
)

func TestSniperOutlineIsSightLine(t *testing.T) {
	turret := testTurret(defs.ArchetypeSniper)
	turret.Angle = math.Pi / 2
	pts := TurretRangeOutline(turret, geom.V(1, 1))
	if len(pts) != 2 {
		t.Fatalf("points = %d, want 2", len(pts))
	}
	if pts[0] != geom.V(1, 1) || pts[1].Dist(geom.V(1, 11)) > 1e-9 {
		t.Errorf("sight line = %v", pts)
	}
}

func TestConeOutlineIsClosed(t *testing.T) {
	for _, archetype := range []defs.Archetype{defs.ArchetypeMachineGun, defs.ArchetypeShotgun} {
		turret := testTurret(archetype)
		pos := geom.V(-2, 3)
		pts := TurretRangeOutline(turret, pos)
		if len(pts) != config.RangeConeSegments+3 {
			t.Errorf("%s: points = %d, want %d", archetype, len(pts), config.RangeConeSegments+3)
			continue
		}
		if pts[0] != pos || pts[len(pts)-1] != pos {
			t.Errorf("%s: cone does not start and end at the turret", archetype)
		}
		for _, p := range pts[1 : len(pts)-1] {
			if math.Abs(p.Dist(pos)-turret.Range) > 1e-9 {
				t.Errorf("%s: arc point %v not on the range circle", archetype, p)
			}
			if a := geom.AngleBetween(turret.Forward(), p.Sub(pos)); a > turret.Tolerance()+1e-9 {
				t.Errorf("%s: arc point outside the fire angle: %v", archetype, a)
			}
		}
	}
}

func TestUnknownArchetypeGetsCircle(t *testing.T) {
	turret := testTurret(defs.Archetype("Mortar"))
	if got := len(TurretRangeOutline(turret, geom.V(0, 0))); got != 51 {
		t.Errorf("points = %d, want 51", got)
	}
}
