// Copyright (C) 2024 Markus L. Noga
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


package render

import (
	"testing"
	"time"
)

// Waits for the slot to free up. Do releases on a separate goroutine, so a
// successful acquire can lag the completion of the gated function
func acquireEventually(sf *SingleFlight) bool {
	for i := 0; i < 5000; i++ {
		if sf.TryAcquire() {
			return true
		}
		time.Sleep(time.Millisecond)
	}
	return false
}

func TestSingleFlightDropsBusy(t *testing.T) {
	sf := NewSingleFlight()

	block := make(chan bool)
	if !sf.Do(func() { <-block }) {
		t.Fatalf("first request not started; want started")
	}

	// the slot is taken until the first render finishes
	if sf.Do(func() {}) {
		t.Errorf("second request started while busy; want dropped")
	}
	if sf.TryAcquire() {
		t.Errorf("TryAcquire succeeded while busy; want failure")
	}

	block <- true

	// dropped requests are not queued, the slot frees up for new ones
	if !acquireEventually(sf) {
		t.Errorf("slot still busy after completion; want free")
	}
	sf.Release()
}

func TestSingleFlightSequential(t *testing.T) {
	sf := NewSingleFlight()
	ran := 0
	for i := 0; i < 3; i++ {
		done := make(chan bool)
		if !acquireEventually(sf) {
			t.Fatalf("slot busy before request %d; want free", i)
		}
		sf.Release()
		if !sf.Do(func() { ran++; done <- true }) {
			t.Fatalf("request %d not started; want started", i)
		}
		<-done
	}
	if ran != 3 {
		t.Errorf("ran=%d; want 3", ran)
	}
}
