// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package gateway issues capability tokens for the external protocol gateway
// that renders RDP, VNC and Telnet sessions.
//
// A token carries a connection descriptor, the protocol name plus a flat
// settings map, encrypted with AES-256-CBC under the gateway key. Its wire
// form is the base64 of the JSON object {"iv": <base64>, "value": <base64>}.
// The gateway decrypts it with the same key and opens the session.
//
// The cipher is unauthenticated CBC because that is what the gateway reads.
// Tokens are short-lived and travel over the authenticated API only.
//
// Operator note: RDP descriptors default to "ignore-cert": true, so the
// gateway accepts any server certificate unless a host's options set
// "ignore-cert" to false. Override it per host where RDP servers present
// certificates that the gateway can verify.
package gateway
