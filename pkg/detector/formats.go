package detector

import (
	"regexp"
	"strings"

	"loglens/pkg/entry"
)

// Format labels.
const (
	FormatSyslog      = "syslog"
	FormatDmesg       = "dmesg"
	FormatKubernetes  = "kubernetes"
	FormatMySQL       = "mysql"
	FormatNginx       = "nginx"
	FormatApache      = "apache"
	FormatDocker      = "docker"
	FormatApplication = "application"
	FormatGeneric     = "generic"
)

// Labels returns the candidate format labels in declaration order. Score
// ties break toward the earlier label, so the ordering is load-bearing and
// must stay a slice, never a map.
func Labels() []string {
	return []string{
		FormatSyslog,
		FormatDmesg,
		FormatKubernetes,
		FormatMySQL,
		FormatNginx,
		FormatApache,
		FormatDocker,
		FormatApplication,
		FormatGeneric,
	}
}

// IsLabel reports whether s is a known format label.
func IsLabel(s string) bool {
	for _, l := range Labels() {
		if s == l {
			return true
		}
	}
	return false
}

// check is a single scoring signal. It fires at most once per line: when
// always is set, when any pattern matches the raw line, or when any keyword
// occurs in the lower-cased line.
type check struct {
	patterns []*regexp.Regexp
	keywords []string
	always   bool
	weight   int
}

// formatSignals holds the ordered scoring signals for one format family.
type formatSignals struct {
	label  string
	checks []check
}

var (
	kernelRingPattern = regexp.MustCompile(`\[\s*\d+\.\d+\]`)
	ipv4Pattern       = regexp.MustCompile(`\d+\.\d+\.\d+\.\d+`)
	bracketQuotePair  = regexp.MustCompile(`\[.*?\].*?".*?"`)
)

// defaultSignals returns the per-format scoring tables. Structural signals
// (kernel ring-buffer timestamps, explicit product names) carry weight 3,
// format-shaped timestamps 2, generic cues like a bare IP address 1. The
// timestamp regexes are the same table the line extractor uses.
func defaultSignals() []formatSignals {
	levelWords := make([]string, len(entry.Levels))
	for i, l := range entry.Levels {
		levelWords[i] = strings.ToLower(l)
	}

	return []formatSignals{
		{
			label: FormatSyslog,
			checks: []check{
				{patterns: []*regexp.Regexp{entry.SyslogTimestamp.Pattern}, weight: 2},
			},
		},
		{
			label: FormatDmesg,
			checks: []check{
				{patterns: []*regexp.Regexp{kernelRingPattern}, keywords: []string{"kernel:"}, weight: 3},
			},
		},
		{
			label: FormatKubernetes,
			checks: []check{
				{patterns: []*regexp.Regexp{entry.RFC3339Timestamp.Pattern}, weight: 2},
				{keywords: []string{"pod/", "namespace/", "kubectl", "kubelet"}, weight: 2},
			},
		},
		{
			label: FormatMySQL,
			checks: []check{
				{patterns: []*regexp.Regexp{entry.ISOTimestamp.Pattern}, weight: 1},
				{keywords: []string{"mysql", "innodb", "query", "connection"}, weight: 2},
			},
		},
		{
			label: FormatNginx,
			checks: []check{
				{keywords: []string{"nginx", "access.log", "error.log"}, weight: 3},
				{patterns: []*regexp.Regexp{ipv4Pattern}, weight: 1},
			},
		},
		{
			label: FormatApache,
			checks: []check{
				{keywords: []string{"apache", "httpd"}, weight: 3},
				{patterns: []*regexp.Regexp{bracketQuotePair}, weight: 2},
			},
		},
		{
			label: FormatDocker,
			checks: []check{
				{keywords: []string{"docker", "container"}, weight: 3},
			},
		},
		{
			label: FormatApplication,
			checks: []check{
				{keywords: levelWords, weight: 1},
			},
		},
		{
			label: FormatGeneric,
			checks: []check{
				{always: true, weight: 1},
			},
		},
	}
}

// matches reports whether the check fires for the given line.
// lower is the pre-lowercased copy of line.
func (c *check) matches(line, lower string) bool {
	if c.always {
		return true
	}
	for _, p := range c.patterns {
		if p.MatchString(line) {
			return true
		}
	}
	for _, k := range c.keywords {
		if strings.Contains(lower, k) {
			return true
		}
	}
	return false
}
