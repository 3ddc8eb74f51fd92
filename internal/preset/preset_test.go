// Copyright (C) 2020 Markus L. Noga
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package preset

import "testing"

func TestResolveUnknownFallsBackToDefault(t *testing.T) {
	cfg := Resolve("does-not-exist")
	if cfg.ID != DefaultID {
		t.Fatalf("got ID %q, want default %q", cfg.ID, DefaultID)
	}
}

func TestResolveKnownRoundTrips(t *testing.T) {
	for _, id := range Order {
		cfg := Resolve(id)
		if cfg.ID != id {
			t.Errorf("Resolve(%q).ID = %q", id, cfg.ID)
		}
	}
}

func TestAllMatchesOrder(t *testing.T) {
	all := All()
	if len(all) != len(Order) {
		t.Fatalf("All() returned %d presets, want %d", len(all), len(Order))
	}
	for i, cfg := range all {
		if cfg.ID != Order[i] {
			t.Errorf("All()[%d].ID = %q, want %q", i, cfg.ID, Order[i])
		}
	}
}
