// Copyright 2025 vstl Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package vstl

import "testing"

// TestDispatchConsistency verifies the level/width/name accessors agree.
func TestDispatchConsistency(t *testing.T) {
	level := CurrentLevel()
	if CurrentName() != level.String() {
		t.Errorf("CurrentName() = %q, want %q", CurrentName(), level.String())
	}

	width := CurrentWidth()
	switch level {
	case DispatchScalar, DispatchSSE2, DispatchNEON:
		if width != 16 {
			t.Errorf("width = %d for %s, want 16", width, level)
		}
	case DispatchAVX2:
		if width != 32 {
			t.Errorf("width = %d for avx2, want 32", width)
		}
	case DispatchAVX512:
		if width != 64 {
			t.Errorf("width = %d for avx512, want 64", width)
		}
	}

	if HasSIMD() != (level != DispatchScalar) {
		t.Errorf("HasSIMD() = %v inconsistent with level %s", HasSIMD(), level)
	}
}

// TestDispatchLevelString verifies unknown levels stringify safely.
func TestDispatchLevelString(t *testing.T) {
	if s := DispatchLevel(99).String(); s != "unknown" {
		t.Errorf("DispatchLevel(99).String() = %q, want \"unknown\"", s)
	}
}
