// SPDX-FileCopyrightText: 2020-present Open Networking Foundation <info@opennetworking.org>
//
// SPDX-License-Identifier: Apache-2.0

package util

import (
	"strings"
)

const keyValueSep = "="
const entrySep = ","

// SplitMap splits a "key=value,key=value" string into key-value pairs.
// Entries without a separator are ignored and surrounding spaces are trimmed.
func SplitMap(value string) map[string]string {
	pairs := make(map[string]string)
	for _, pair := range strings.Split(value, entrySep) {
		key, value, ok := strings.Cut(pair, keyValueSep)
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		pairs[key] = strings.TrimSpace(value)
	}
	return pairs
}
