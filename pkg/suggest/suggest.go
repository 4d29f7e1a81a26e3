// Copyright (c) 2025, Verskit Authors.  All rights reserved.
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

// Package suggest computes did-you-mean candidates for user-facing error
// messages.
package suggest

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// maxDistance is the largest edit distance still considered a plausible typo.
const maxDistance = 3

// Closest returns the candidate nearest to input by edit distance, when one
// is close enough to be a plausible typo.
func Closest(input string, candidates []string) (string, bool) {
	best := ""
	bestDist := maxDistance + 1
	lower := strings.ToLower(input)
	for _, c := range candidates {
		d := levenshtein.ComputeDistance(lower, strings.ToLower(c))
		if d < bestDist {
			best = c
			bestDist = d
		}
	}
	if bestDist > maxDistance {
		return "", false
	}
	return best, true
}
