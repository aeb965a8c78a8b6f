// SPDX-FileCopyrightText: 2020-present Open Networking Foundation <info@opennetworking.org>
//
// SPDX-License-Identifier: Apache-2.0

package random

import (
	"math/rand"
	"time"

	petname "github.com/dustinkirkland/golang-petname"
)

func init() {
	rand.Seed(time.Now().UTC().UnixNano())
}

// NewPetName returns a new random pet name
func NewPetName(words int) string {
	return petname.Generate(words, "-")
}

// WithSuffix appends a random two-word pet name to the given name
func WithSuffix(name string) string {
	if name == "" {
		return NewPetName(2)
	}
	return name + "-" + NewPetName(2)
}
