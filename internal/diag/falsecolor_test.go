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

package diag

import "testing"

func TestHeatColorClampsOutOfRange(t *testing.T) {
	low := HeatColor(-5)
	high := HeatColor(5)
	if low == nil || high == nil {
		t.Fatal("HeatColor returned nil")
	}
	if low != HeatColor(0) {
		t.Errorf("HeatColor(-5) = %v, want HeatColor(0) = %v", low, HeatColor(0))
	}
	if high != HeatColor(1) {
		t.Errorf("HeatColor(5) = %v, want HeatColor(1) = %v", high, HeatColor(1))
	}
}

func TestColorAtFuncIndexesBuffer(t *testing.T) {
	pix := []float32{0, 0.5, 1}
	f := ColorAtFunc(pix)
	for i := range pix {
		if f(i) == nil {
			t.Fatalf("ColorAtFunc(%d) returned nil", i)
		}
		if f(i) != HeatColor(pix[i]) {
			t.Errorf("ColorAtFunc(%d) = %v, want HeatColor(%v) = %v", i, f(i), pix[i], HeatColor(pix[i]))
		}
	}
}
