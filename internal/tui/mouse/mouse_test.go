package mouse

import "testing"

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 10, W: 20, H: 10}

	cases := []struct {
		x, y     int
		expected bool
	}{
		{10, 10, true},  // top-left corner
		{29, 10, true},  // last column inside
		{10, 19, true},  // last row inside
		{29, 19, true},  // bottom-right inside corner
		{15, 15, true},  // center
		{9, 10, false},  // just left
		{30, 10, false}, // right edge is exclusive
		{10, 9, false},  // just above
		{10, 20, false}, // bottom edge is exclusive
	}

	for _, tc := range cases {
		got := r.Contains(tc.x, tc.y)
		if got != tc.expected {
			t.Errorf("Rect(%+v).Contains(%d, %d) = %v, want %v", r, tc.x, tc.y, got, tc.expected)
		}
	}
}

func TestHitMapBasic(t *testing.T) {
	hm := NewHitMap()

	hm.AddRect("card:0", 0, 0, 30, 5, 0)
	hm.AddRect("card:1", 31, 0, 30, 5, 1)

	r := hm.Test(15, 2)
	if r == nil || r.ID != "card:0" {
		t.Errorf("expected hit on card:0, got %v", r)
	}
	if r != nil {
		if idx, ok := r.Data.(int); !ok || idx != 0 {
			t.Errorf("expected payload 0, got %v", r.Data)
		}
	}

	r = hm.Test(40, 2)
	if r == nil || r.ID != "card:1" {
		t.Errorf("expected hit on card:1, got %v", r)
	}

	if r := hm.Test(30, 2); r != nil {
		t.Errorf("expected no hit in the gap, got %v", r)
	}
}

func TestHitMapLaterRegistrationWins(t *testing.T) {
	hm := NewHitMap()

	hm.AddRect("backdrop", 0, 0, 100, 40, nil)
	hm.AddRect("modal", 20, 10, 60, 20, nil)
	hm.AddRect("close", 76, 11, 3, 1, nil)

	if r := hm.Test(77, 11); r == nil || r.ID != "close" {
		t.Errorf("expected close control on top, got %v", r)
	}
	if r := hm.Test(50, 15); r == nil || r.ID != "modal" {
		t.Errorf("expected modal above backdrop, got %v", r)
	}
	if r := hm.Test(5, 5); r == nil || r.ID != "backdrop" {
		t.Errorf("expected backdrop hit, got %v", r)
	}
}

func TestHitMapClear(t *testing.T) {
	hm := NewHitMap()

	hm.AddRect("a", 0, 0, 10, 10, nil)
	hm.AddRect("b", 20, 0, 10, 10, nil)

	if len(hm.Regions()) != 2 {
		t.Errorf("expected 2 regions, got %d", len(hm.Regions()))
	}

	hm.Clear()

	if len(hm.Regions()) != 0 {
		t.Errorf("expected 0 regions after clear, got %d", len(hm.Regions()))
	}
	if r := hm.Test(5, 5); r != nil {
		t.Errorf("expected no hit after clear, got %v", r)
	}
}
