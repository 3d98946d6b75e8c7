// Package sql screens externally-supplied parameter values for SQL
// injection patterns. All store access is parameterized, so a detected
// pattern is logged for the security audit trail rather than blocking the
// request.
package sql

import (
	libinjection "github.com/corazawaf/libinjection-go"
)

// InjectionCheckResult contains the result of an injection check on a
// parameter value.
type InjectionCheckResult struct {
	Fingerprint string // libinjection fingerprint of the detected pattern
	ParamName   string // Name of the parameter that failed the check
	ParamValue  string // The value that was checked
}

// CheckParameterForInjection uses libinjection to detect SQL injection
// patterns in a query parameter value. Returns nil if the value is clean.
func CheckParameterForInjection(paramName, value string) *InjectionCheckResult {
	isSQLi, fingerprint := libinjection.IsSQLi(value)
	if !isSQLi {
		return nil
	}

	return &InjectionCheckResult{
		Fingerprint: string(fingerprint),
		ParamName:   paramName,
		ParamValue:  value,
	}
}

// CheckParameters screens a set of named parameter values and returns a
// result for each one that tripped the detector. An empty slice means all
// values are clean.
func CheckParameters(params map[string]string) []*InjectionCheckResult {
	results := make([]*InjectionCheckResult, 0)
	for name, value := range params {
		if result := CheckParameterForInjection(name, value); result != nil {
			results = append(results, result)
		}
	}
	return results
}
