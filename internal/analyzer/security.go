package analyzer

import (
	"regexp"

	"github.com/blackwell-systems/ideation/internal/finding"
)

// NewSecurity returns the security analyzer: leaked credentials, dynamic
// code execution, injectable queries, weak hashing and plain-text transport.
func NewSecurity() Analyzer {
	return &lineAnalyzer{
		category: finding.CategorySecurity,
		lineRules: []LineRule{
			{
				Pattern: regexp.MustCompile(`-----BEGIN\s+(?:RSA\s+|EC\s+|OPENSSH\s+)?PRIVATE\s+KEY-----`),
				Title:   "Private key committed to the repository",
				Description: "A PEM private key block is stored alongside the source. " +
					"Anyone with read access to the repository can impersonate its owner.",
				Recommendation: "Revoke the key, remove it from history and load it from a secret store at runtime.",
				Severity:       finding.SeverityCritical,
				Frequency:      finding.FrequencyAlways,
				FixCost:        finding.FixCostMedium,
			},
			{
				Pattern:        regexp.MustCompile(`(?i)(api[_-]?key|secret|token|passw(or)?d)\s*[:=]\s*["'][^"'\s]{8,}["']`),
				Title:          "Hard-coded credentials",
				Description:    "String literals assigned to key, secret, token or password names look like real credentials.",
				Recommendation: "Move credentials to environment variables or a secret manager and rotate the exposed values.",
				Severity:       finding.SeverityCritical,
				Frequency:      finding.FrequencyAlways,
				FixCost:        finding.FixCostLow,
				Exts:           exts(codeExts, configExts),
			},
			{
				Pattern: regexp.MustCompile(`(^|[^.\w])(eval|new\s+Function)\s*\(`),
				Title:   "Dynamic code evaluation",
				Description: "eval or the Function constructor executes strings as code, which turns any " +
					"injected input into arbitrary code execution.",
				Recommendation: "Replace dynamic evaluation with explicit parsing or a lookup table of allowed operations.",
				Severity:       finding.SeverityHigh,
				Frequency:      finding.FrequencyOften,
				FixCost:        finding.FixCostMedium,
				Exts:           codeExts,
			},
			{
				Pattern:        regexp.MustCompile(`(?i)(SELECT|INSERT|UPDATE|DELETE)\b[^"'` + "`" + `]*["'` + "`" + `]\s*\+`),
				Title:          "SQL built by string concatenation",
				Description:    "Queries are assembled by concatenating strings, which allows SQL injection when any part is user controlled.",
				Recommendation: "Use parameterised queries or prepared statements.",
				Severity:       finding.SeverityHigh,
				Frequency:      finding.FrequencyOften,
				FixCost:        finding.FixCostLow,
				Exts:           codeExts,
			},
			{
				Pattern:        regexp.MustCompile(`(?i)\b(md5|sha1)\b\s*[.(]|createHash\(\s*["'](md5|sha1)["']`),
				Title:          "Weak hash algorithm",
				Description:    "MD5 and SHA-1 are broken for collision resistance and unsuitable for passwords or signatures.",
				Recommendation: "Use SHA-256 or better for integrity and bcrypt, scrypt or argon2 for passwords.",
				Severity:       finding.SeverityMedium,
				Frequency:      finding.FrequencyOften,
				FixCost:        finding.FixCostLow,
				Exts:           codeExts,
			},
			{
				Pattern:        regexp.MustCompile(`["']http://(?:[a-zA-Z0-9-]+\.)+[a-zA-Z]{2,}`),
				Title:          "Plain HTTP endpoints",
				Description:    "Requests to http:// URLs travel unencrypted and can be read or altered in transit.",
				Recommendation: "Switch the endpoints to https:// and reject downgrades.",
				Severity:       finding.SeverityMedium,
				Frequency:      finding.FrequencyOften,
				FixCost:        finding.FixCostLow,
				Exts:           exts(codeExts, configExts),
			},
			{
				Pattern:        regexp.MustCompile(`\.innerHTML\s*=|dangerouslySetInnerHTML`),
				Title:          "Unescaped HTML injection",
				Description:    "Markup is written straight into the DOM, which enables cross-site scripting when the content is not trusted.",
				Recommendation: "Render text with textContent or a templating layer that escapes by default.",
				Severity:       finding.SeverityHigh,
				Frequency:      finding.FrequencyOften,
				FixCost:        finding.FixCostLow,
				Exts:           codeExts,
			},
		},
	}
}
