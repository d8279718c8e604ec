// Copyright (c) DevOps Wiz
// SPDX-License-Identifier: MPL-2.0

package configuration

// AuthMode is a coarse classification of the credentials a run carries.
type AuthMode string

const (
	AuthModeBoth    AuthMode = "BOTH"
	AuthModeUser    AuthMode = "USER"
	AuthModeService AuthMode = "SERVICE"
	AuthModeNone    AuthMode = "NONE"
)

func (m AuthMode) String() string { return string(m) }

// AuthModeFor evaluates presence of the user and service credential sources.
// The client credential does not participate; it only bootstraps a user
// credential elsewhere.
func AuthModeFor(user, service string) AuthMode {
	switch {
	case user != "" && service != "":
		return AuthModeBoth
	case user != "":
		return AuthModeUser
	case service != "":
		return AuthModeService
	default:
		return AuthModeNone
	}
}
