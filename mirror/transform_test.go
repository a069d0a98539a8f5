package mirror

import (
	"math"
	"testing"
)

func nearly(a, b, tol float64) bool { return math.Abs(a-b) <= tol }

func pairNearly(a, b AnglePair, tol float64) bool {
	return nearly(a.Theta, b.Theta, tol) && nearly(a.Phi, b.Phi, tol)
}

// grid over theta in (0°,180°) and phi in (0°,90°), away from the poles
// and from the simplified formula's singular azimuths.
func forEachMirrorAngle(fn func(theta, phi float64)) {
	for theta := 10.0; theta <= 170; theta += 5 {
		for phi := 5.0; phi <= 85; phi += 5 {
			fn(theta, phi)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	forEachMirrorAngle(func(theta, phi float64) {
		viewing := MirrorToViewing(theta, phi)
		back := ViewingToMirror(viewing.Theta, viewing.Phi)
		if !pairNearly(back, AnglePair{Theta: theta, Phi: phi}, 1e-6) {
			t.Errorf("round trip (%v, %v) -> %v -> %v", theta, phi, viewing, back)
		}
	})
}

func TestRoundTripSimplifiedInverse(t *testing.T) {
	forEachMirrorAngle(func(theta, phi float64) {
		viewing := MirrorToViewing(theta, phi)
		back := ViewingToMirrorSimplified(viewing.Theta, viewing.Phi)
		if !pairNearly(back, AnglePair{Theta: theta, Phi: phi}, 1e-6) {
			t.Errorf("round trip (%v, %v) -> %v -> %v", theta, phi, viewing, back)
		}
	})
}

func TestForwardExactAgreesWithSimplified(t *testing.T) {
	forEachMirrorAngle(func(theta, phi float64) {
		exact := MirrorToViewing(theta, phi)
		simplified := MirrorToViewingSimplified(theta, phi)
		if !pairNearly(exact, simplified, 1e-4) {
			t.Errorf("(%v, %v): exact %v, simplified %v", theta, phi, exact, simplified)
		}
	})
}

func TestInverseExactAgreesWithSimplified(t *testing.T) {
	for theta := 5.0; theta <= 175; theta += 10 {
		for phi := -80.0; phi <= 80; phi += 10 {
			exact := ViewingToMirror(theta, phi)
			simplified := ViewingToMirrorSimplified(theta, phi)
			if !pairNearly(exact, simplified, 1e-9) {
				t.Errorf("(%v, %v): exact %v, simplified %v", theta, phi, exact, simplified)
			}
		}
	}
}

func TestMirrorAtHorizon(t *testing.T) {
	viewing := MirrorToViewing(90, 45)
	if !pairNearly(viewing, AnglePair{Theta: 90, Phi: 0}, 1e-9) {
		t.Fatalf("MirrorToViewing(90, 45) = %v, want (90, 0)", viewing)
	}

	back := ViewingToMirror(viewing.Theta, viewing.Phi)
	if !pairNearly(back, AnglePair{Theta: 90, Phi: 45}, 1e-9) {
		t.Fatalf("ViewingToMirror(%v) = %v, want (90, 45)", viewing, back)
	}

	simplified := MirrorToViewingSimplified(90, 45)
	if !pairNearly(simplified, viewing, 1e-9) {
		t.Fatalf("MirrorToViewingSimplified(90, 45) = %v, want %v", simplified, viewing)
	}
}

func TestMirrorToViewingKnownValues(t *testing.T) {
	tests := []struct {
		theta, phi float64
		want       AnglePair
	}{
		{60, 30, AnglePair{Theta: 64.34109372674472, Phi: -43.897886248014}},
		{120, 60, AnglePair{Theta: 138.59037789072912, Phi: 10.893394649130903}},
	}

	for _, tt := range tests {
		if got := MirrorToViewing(tt.theta, tt.phi); !pairNearly(got, tt.want, 1e-9) {
			t.Errorf("MirrorToViewing(%v, %v) = %v, want %v", tt.theta, tt.phi, got, tt.want)
		}
		if got := MirrorToViewingSimplified(tt.theta, tt.phi); !pairNearly(got, tt.want, 1e-9) {
			t.Errorf("MirrorToViewingSimplified(%v, %v) = %v, want %v", tt.theta, tt.phi, got, tt.want)
		}
	}
}

func TestSimplifiedSingularAzimuth(t *testing.T) {
	thetaRad := 75 * math.Pi / 180
	if term := simplifiedAzimuthTangent(thetaRad, 0); !math.IsInf(term, -1) {
		t.Fatalf("azimuth tangent at phi=0 = %v, want -Inf", term)
	}

	// atan saturates the infinite tangent instead of failing
	got := MirrorToViewingSimplified(75, 0)
	if got.Phi != -90 {
		t.Fatalf("MirrorToViewingSimplified(75, 0).Phi = %v, want -90", got.Phi)
	}
	if !nearly(got.Theta, 90, 1e-12) {
		t.Fatalf("MirrorToViewingSimplified(75, 0).Theta = %v, want 90", got.Theta)
	}
}

func TestSimplifiedSingularAtZenith(t *testing.T) {
	if term := simplifiedAzimuthTangent(0, math.Pi/4); !math.IsInf(term, -1) {
		t.Fatalf("azimuth tangent at theta=0 = %v, want -Inf", term)
	}
}

func TestSingleBranchAzimuth(t *testing.T) {
	// the true viewing azimuth is 150°, atan folds it into (-90°, 90°)
	exact := MirrorToViewing(90, 120)
	simplified := MirrorToViewingSimplified(90, 120)
	if !nearly(exact.Phi, -30, 1e-9) {
		t.Fatalf("MirrorToViewing(90, 120).Phi = %v, want -30", exact.Phi)
	}
	if !pairNearly(exact, simplified, 1e-9) {
		t.Fatalf("exact %v and simplified %v disagree on folded branch", exact, simplified)
	}
}

func TestIncidentRayIsFixed(t *testing.T) {
	if IncidentRay.Magnitude() != 1 || TargetAxis.Magnitude() != 1 || SkyAxis.Magnitude() != 1 {
		t.Fatal("fixed geometry vectors must be unit length")
	}
	if got := IncidentRay.AngleToDegrees(TargetAxis); !nearly(got, 90, 1e-9) {
		t.Fatalf("incident ray vs target axis = %v°", got)
	}
	if got := IncidentRay.AngleToDegrees(SkyAxis); !nearly(got, 90, 1e-9) {
		t.Fatalf("incident ray vs sky axis = %v°", got)
	}
}
