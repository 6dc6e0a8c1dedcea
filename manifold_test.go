package phys2d

import "testing"

func stationaryPair(t *testing.T) (a, b *RigidBody) {
	t.Helper()
	a, err := NewRectBody(Vec2{0, 0}, 10, 10, 1, 0.5, 0.5, false)
	if err != nil {
		t.Fatalf("NewRectBody a: %v", err)
	}
	b, err = NewRectBody(Vec2{10, 0}, 10, 10, 1, 0.5, 0.5, false)
	if err != nil {
		t.Fatalf("NewRectBody b: %v", err)
	}
	return a, b
}

func TestPersistContactsKeepsUnchangedContact(t *testing.T) {
	a, b := stationaryPair(t)
	normal := Vec2{1, 0}

	existing := Contact{
		WorldPosA: Vec2{5, 0},
		WorldPosB: Vec2{5, 0},
		LocalPosA: Vec2{5, 0},
		LocalPosB: Vec2{-5, 0},
	}

	fresh := Contact{
		WorldPosA: Vec2{5, 3},
		WorldPosB: Vec2{5, 3},
		LocalPosA: Vec2{5, 3},
		LocalPosB: Vec2{-5, 3},
	}

	kept := persistContacts([]Contact{existing}, fresh, normal, a, b)
	if len(kept) != 2 {
		t.Fatalf("expected the untouched contact to survive and the fresh one to be added, got %d contacts", len(kept))
	}
}

func TestPersistContactsDropsOnWorldDrift(t *testing.T) {
	a, b := stationaryPair(t)
	normal := Vec2{1, 0}

	stale := Contact{
		WorldPosA: Vec2{5, 0},
		WorldPosB: Vec2{5, 0},
		LocalPosA: Vec2{5, 0},
		LocalPosB: Vec2{-5, 0},
	}
	// Move body A far enough that LocalPosA no longer reconstructs
	// anywhere near the stored WorldPosA.
	a.Translate(Vec2{0, 10})

	fresh := Contact{LocalPosA: Vec2{5, 10}, LocalPosB: Vec2{-5, 10}}

	kept := persistContacts([]Contact{stale}, fresh, normal, a, b)
	for _, c := range kept {
		if c.WorldPosA == stale.WorldPosA {
			t.Errorf("expected the drifted contact to be dropped")
		}
	}
}

func TestPersistContactsDropsOnBodyBWorldDrift(t *testing.T) {
	a, b := stationaryPair(t)
	normal := Vec2{1, 0}

	stale := Contact{
		WorldPosA: Vec2{5, 0},
		WorldPosB: Vec2{5, 0},
		LocalPosA: Vec2{5, 0},
		LocalPosB: Vec2{-5, 0},
	}
	// Move body B far enough that LocalPosB no longer reconstructs
	// anywhere near the stored WorldPosB, with A untouched and no
	// separation along the normal — only the B-side drift check catches this.
	b.Translate(Vec2{0, 10})

	fresh := Contact{LocalPosA: Vec2{5, 0}, LocalPosB: Vec2{-5, 10}}

	kept := persistContacts([]Contact{stale}, fresh, normal, a, b)
	for _, c := range kept {
		if c.WorldPosA == stale.WorldPosA && c.WorldPosB == stale.WorldPosB {
			t.Errorf("expected the contact to be dropped when body B alone has drifted")
		}
	}
}

func TestPersistContactsDedupesNearDuplicate(t *testing.T) {
	a, b := stationaryPair(t)
	normal := Vec2{1, 0}

	existing := Contact{
		WorldPosA: Vec2{5, 0},
		WorldPosB: Vec2{5, 0},
		LocalPosA: Vec2{5, 0},
		LocalPosB: Vec2{-5, 0},
	}
	nearDuplicate := Contact{
		LocalPosA: Vec2{5, 0.5},
		LocalPosB: Vec2{-5, 0.5},
	}

	kept := persistContacts([]Contact{existing}, nearDuplicate, normal, a, b)
	if len(kept) != 1 {
		t.Errorf("expected near-duplicate candidate to be skipped, got %d contacts", len(kept))
	}
}

func TestCapToTwoContactsKeepsDeepestAndFurthest(t *testing.T) {
	deep := Contact{WorldPosA: Vec2{0, 0}, WorldPosB: Vec2{0, 5}}     // depth^2 = 25
	shallow1 := Contact{WorldPosA: Vec2{100, 0}, WorldPosB: Vec2{100, 1}} // depth^2 = 1, far from deep
	shallow2 := Contact{WorldPosA: Vec2{1, 0}, WorldPosB: Vec2{1, 1}}     // depth^2 = 1, close to deep

	kept := capToTwoContacts([]Contact{deep, shallow1, shallow2})
	if len(kept) != 2 {
		t.Fatalf("expected exactly 2 contacts, got %d", len(kept))
	}
	if kept[0] != deep && kept[1] != deep {
		t.Errorf("expected the deepest contact to survive")
	}
	if kept[0] != shallow1 && kept[1] != shallow1 {
		t.Errorf("expected the furthest-from-deepest contact to survive, not the nearer one")
	}
}
