package record

import (
	"os"
	"runtime"
	"strings"
	"time"
)

// Version is the application version written into the Software Agent field
// of freshly encoded records.
const Version = "1.0.0"

// Environment carries the host identity used to default Creator fields at
// encode time. It is injected into the codec instead of read ambiently so
// tests can pin it.
type Environment struct {
	// HostName defaults the Creator "Host Name" field.
	HostName string
	// OSAgent defaults the Creator "OS Agent" field (e.g. "linux/amd64").
	OSAgent string
	// SoftwareAgent defaults the Creator "Software Agent" field.
	SoftwareAgent string
	// TimeZone is the IANA name written into the "Time Zone" field.
	TimeZone string
}

// DetectEnvironment builds an Environment from the running host.
func DetectEnvironment() Environment {
	host, err := os.Hostname()
	if err != nil {
		host = "localhost"
	}
	return Environment{
		HostName:      host,
		OSAgent:       runtime.GOOS + "/" + runtime.GOARCH,
		SoftwareAgent: "daybook/" + Version,
		TimeZone:      localZoneName(),
	}
}

// localZoneName resolves the host timezone name. $TZ wins when set, then
// the name of time.Local, then the /etc/localtime symlink target. The last
// resort is the zone abbreviation of the current instant, which a decoder
// on another machine cannot load; it then falls back to its own host zone,
// so such records only round-trip exactly on the machine that wrote them.
func localZoneName() string {
	if tz := os.Getenv("TZ"); tz != "" {
		return tz
	}
	if name := time.Local.String(); name != "" && name != "Local" {
		return name
	}
	if link, err := os.Readlink("/etc/localtime"); err == nil {
		if i := strings.Index(link, "zoneinfo/"); i >= 0 {
			return link[i+len("zoneinfo/"):]
		}
	}
	abbrev, _ := time.Now().Zone()
	return abbrev
}
