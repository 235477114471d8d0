// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-vault-broker/models"
)

// Field names accepted by [HostValidator.Validate].
const (
	FieldName     = "name"
	FieldHostname = "hostname"
	FieldProtocol = "protocol"
	FieldPort     = "port"
	FieldProxy    = "proxy"
)

var allHostFields = []string{FieldName, FieldHostname, FieldProtocol, FieldPort, FieldProxy}

// HostValidator checks host profiles and their proxy settings. An empty
// proxy chain is not rejected here: it is stored as given and refused when
// a connection is attempted.
type HostValidator struct{}

func NewHostValidator() Validator {
	return &HostValidator{}
}

func (v *HostValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Host:
		return v.validateHost(value, fields...)
	case *models.Host:
		return v.validateHost(*value, fields...)
	case models.ProxyConfig:
		return validateProxy(value)
	case *models.ProxyConfig:
		return validateProxy(*value)
	default:
		return ErrUnsupportedType
	}
}

func (v *HostValidator) validateHost(h models.Host, fields ...string) error {
	if len(fields) == 0 {
		fields = allHostFields
	}

	var errs []error
	for _, field := range fields {
		switch field {
		case FieldName:
			if h.Name == "" {
				errs = append(errs, ErrEmptyName)
			}
		case FieldHostname:
			if h.Hostname == "" {
				errs = append(errs, ErrEmptyHostname)
			}
		case FieldProtocol:
			if !h.Protocol.Valid() {
				errs = append(errs, fmt.Errorf("%w: %q", ErrInvalidProtocol, h.Protocol))
			}
		case FieldPort:
			if !validPort(h.Port) {
				errs = append(errs, fmt.Errorf("%w: %d", ErrInvalidPort, h.Port))
			}
		case FieldProxy:
			if err := validateProxy(h.Proxy); err != nil {
				errs = append(errs, err)
			}
		default:
			errs = append(errs, fmt.Errorf("%w: %s", ErrUnknownField, field))
		}
	}

	return errors.Join(errs...)
}

func validateProxy(c models.ProxyConfig) error {
	if c.ProxyPort != 0 && !validPort(c.ProxyPort) {
		return fmt.Errorf("%w: %d", ErrInvalidProxyPort, c.ProxyPort)
	}

	for i, node := range c.ProxyChain {
		switch {
		case node.Host == "":
			return fmt.Errorf("%w: node %d", ErrEmptyProxyNodeHost, i)
		case !validPort(node.Port):
			return fmt.Errorf("%w: node %d port %d", ErrInvalidProxyNode, i, node.Port)
		case node.ProtocolVersion != 0 && node.ProtocolVersion != 5:
			return fmt.Errorf("%w: node %d version %d", ErrInvalidProxyVersion, i, node.ProtocolVersion)
		}
	}
	return nil
}

func validPort(port int) bool {
	return port >= 1 && port <= 65535
}
