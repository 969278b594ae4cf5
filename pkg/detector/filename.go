package detector

import "strings"

// filenameHints maps filename substrings to format labels, checked in order.
var filenameHints = []struct {
	substrings []string
	label      string
}{
	{[]string{"syslog", "messages"}, FormatSyslog},
	{[]string{"dmesg", "kernel"}, FormatDmesg},
	{[]string{"kubernetes", "k8s", "kubectl"}, FormatKubernetes},
	{[]string{"mysql", "mariadb"}, FormatMySQL},
	{[]string{"nginx"}, FormatNginx},
	{[]string{"apache", "httpd"}, FormatApache},
	{[]string{"docker"}, FormatDocker},
}

// FromFilename guesses a format label from a file name, or returns "" when
// the name carries no hint. Content detection should still run in that case.
func FromFilename(name string) string {
	lower := strings.ToLower(name)
	for _, h := range filenameHints {
		for _, s := range h.substrings {
			if strings.Contains(lower, s) {
				return h.label
			}
		}
	}
	return ""
}
