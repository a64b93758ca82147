package env

import (
	"strings"

	"github.com/wellmaintained/projgen/pkg/model"
)

// sensitivePatterns identify names whose values are likely to be secrets.
// Matching is case-insensitive substring matching.
var sensitivePatterns = []string{
	"PASSWORD",
	"PASSWD",
	"SECRET",
	"_TOKEN",
	"TOKEN_",
	"API_KEY",
	"APIKEY",
	"PRIVATE_KEY",
	"CREDENTIAL",
	"_AUTH",
	"AUTH_",
	"AUTHORIZATION",
}

// referenceSuffixes mark a name as holding a pointer to a secret (a Secrets
// Manager name or a key inside one, an SSM parameter, an ARN) rather than
// the secret itself.
var referenceSuffixes = []string{
	"_SECRET_NAME",
	"_SECRET_KEY",
	"_SECRET_ARN",
	"_PARAMETER_NAME",
	"_PARAMETER",
	"_ARN",
}

// SensitiveKeys returns, in input order, the names that look like they carry
// a secret value directly. Names ending in a reference suffix such as
// _SECRET_NAME are not reported.
func SensitiveKeys(vars []model.EnvVar) []string {
	var keys []string
	for _, v := range vars {
		if isSensitive(v.Name) {
			keys = append(keys, v.Name)
		}
	}
	return keys
}

func isSensitive(name string) bool {
	upper := strings.ToUpper(name)

	for _, suffix := range referenceSuffixes {
		if strings.HasSuffix(upper, suffix) {
			return false
		}
	}
	for _, pattern := range sensitivePatterns {
		if strings.Contains(upper, pattern) {
			return true
		}
	}
	return false
}
