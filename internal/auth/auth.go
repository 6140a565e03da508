// Copyright 2025 SirSeer, LLC
//
// Licensed under the Business Source License 1.1 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://mariadb.com/bsl11
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package auth resolves Bitbucket Cloud API credentials.
//
// Bitbucket Cloud API tokens authenticate via HTTP Basic Auth: the username
// is the Atlassian account email and the password is the API token. Tokens
// replace the legacy app password mechanism.
// See: https://support.atlassian.com/bitbucket-cloud/docs/api-tokens/
package auth

import (
	"fmt"
	"os"
	"strings"

	relayerrors "github.com/sirseerhq/bitbucket-relay/internal/errors"
)

// Environment variables consulted when the corresponding flag is not set.
const (
	EmailEnvVar    = "BITBUCKET_EMAIL"
	APITokenEnvVar = "BITBUCKET_API_TOKEN" // #nosec G101 - env var name, not a credential
)

// Credentials bundles the two secrets needed for Basic Auth against the
// Bitbucket Cloud API. Treated as immutable once resolved.
type Credentials struct {
	Email    string
	APIToken string
}

// Resolve returns credentials from CLI flags or environment variables.
// Flags take precedence. Both values must resolve; otherwise the returned
// error names the missing pieces and how to supply them, and wraps
// ErrMissingCredentials so callers can detect the class.
func Resolve(flagEmail, flagToken string) (Credentials, error) {
	email := flagEmail
	if email == "" {
		email = os.Getenv(EmailEnvVar)
	}

	token := flagToken
	if token == "" {
		token = os.Getenv(APITokenEnvVar)
	}

	var missing []string
	if email == "" {
		missing = append(missing, "email")
	}
	if token == "" {
		missing = append(missing, "API token")
	}

	if len(missing) > 0 {
		return Credentials{}, fmt.Errorf(
			"missing Bitbucket %s. Provide credentials via flags (--email, --api-token) or environment variables (%s, %s): %w",
			strings.Join(missing, " and "), EmailEnvVar, APITokenEnvVar,
			relayerrors.ErrMissingCredentials)
	}

	return Credentials{Email: email, APIToken: token}, nil
}
