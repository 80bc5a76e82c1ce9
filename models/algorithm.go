// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"strings"
)

// Algorithm is the HMAC hash function used to derive one-time codes for an
// account. The zero value means the backend picks the algorithm itself.
type Algorithm int

const (
	// AlgorithmAutodetect leaves the choice of hash function to the backend.
	// On the wire it is an empty string or null.
	AlgorithmAutodetect Algorithm = iota
	// AlgorithmSHA1 is HMAC-SHA1, the RFC 6238 default.
	AlgorithmSHA1
	// AlgorithmSHA256 is HMAC-SHA256.
	AlgorithmSHA256
	// AlgorithmSHA512 is HMAC-SHA512.
	AlgorithmSHA512
)

// algorithmWireNames is the single mapping table between [Algorithm] values
// and the strings exchanged with the backend.
var algorithmWireNames = map[Algorithm]string{
	AlgorithmAutodetect: "",
	AlgorithmSHA1:       "SHA1",
	AlgorithmSHA256:     "SHA256",
	AlgorithmSHA512:     "SHA512",
}

var algorithmsByWireName = func() map[string]Algorithm {
	out := make(map[string]Algorithm, len(algorithmWireNames))
	for alg, name := range algorithmWireNames {
		out[name] = alg
	}
	return out
}()

// ParseAlgorithm maps a wire name to an [Algorithm]. Unknown names (including
// lowercase variants the backend never emits) resolve to
// [AlgorithmAutodetect] and ok is false.
func ParseAlgorithm(name string) (alg Algorithm, ok bool) {
	alg, ok = algorithmsByWireName[strings.TrimSpace(name)]
	return alg, ok
}

// String returns the wire name of the algorithm.
func (a Algorithm) String() string {
	return algorithmWireNames[a]
}

// Label returns a human-readable name used by the terminal UI.
func (a Algorithm) Label() string {
	if a == AlgorithmAutodetect {
		return "auto"
	}
	return a.String()
}

// MarshalJSON encodes the algorithm as its wire name.
func (a Algorithm) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

// UnmarshalJSON accepts a wire name or null. Anything it does not recognise
// decodes to [AlgorithmAutodetect].
func (a *Algorithm) UnmarshalJSON(b []byte) error {
	var name *string
	if err := json.Unmarshal(b, &name); err != nil {
		return err
	}
	if name == nil {
		*a = AlgorithmAutodetect
		return nil
	}

	*a, _ = ParseAlgorithm(*name)
	return nil
}
