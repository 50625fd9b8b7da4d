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

// Gates render passes so at most one is in flight at a time. Requests
// arriving while busy are dropped, not queued; callers re-request with
// current parameters once the running pass completes
type SingleFlight struct {
	token chan bool
}

func NewSingleFlight() *SingleFlight {
	sf := &SingleFlight{token: make(chan bool, 1)}
	sf.token <- true
	return sf
}

// Claims the in-flight slot without blocking. Returns false when busy
func (sf *SingleFlight) TryAcquire() bool {
	select {
	case <-sf.token:
		return true
	default:
		return false
	}
}

// Returns the in-flight slot. Must be called exactly once per successful TryAcquire
func (sf *SingleFlight) Release() {
	sf.token <- true
}

// Runs f on a new goroutine if the slot is free, and reports whether it started
func (sf *SingleFlight) Do(f func()) bool {
	if !sf.TryAcquire() {
		return false
	}
	go func() {
		defer sf.Release()
		f()
	}()
	return true
}
