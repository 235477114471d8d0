// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package vault

import (
	"encoding/json"
	"strings"
)

// Envelope is the stored form of an encrypted field.
type Envelope struct {
	Data string `json:"data"`
	IV   string `json:"iv"`
	Tag  string `json:"tag"`
	Salt string `json:"salt"`
}

// ParseEnvelope reports whether value is an envelope and returns it.
// A value is an envelope iff it is a JSON object whose data, iv, tag and
// salt members are all non-empty strings. Hex validity is not checked here:
// a damaged envelope is still an envelope and must fail decryption.
func ParseEnvelope(value string) (Envelope, bool) {
	trimmed := strings.TrimSpace(value)
	if !strings.HasPrefix(trimmed, "{") {
		return Envelope{}, false
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal([]byte(trimmed), &raw); err != nil {
		return Envelope{}, false
	}

	var env Envelope
	for name, dst := range map[string]*string{
		"data": &env.Data,
		"iv":   &env.IV,
		"tag":  &env.Tag,
		"salt": &env.Salt,
	} {
		member, ok := raw[name]
		if !ok {
			return Envelope{}, false
		}
		if err := json.Unmarshal(member, dst); err != nil || *dst == "" {
			return Envelope{}, false
		}
	}

	return env, true
}

// IsEncrypted reports whether value is an envelope. It never fails.
func IsEncrypted(value string) bool {
	_, ok := ParseEnvelope(value)
	return ok
}

func (e Envelope) encode() (string, error) {
	b, err := json.Marshal(e)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
