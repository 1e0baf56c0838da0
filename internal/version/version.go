package version

// Value is the dashboard version reported by --version.
// Overridable at build time:
//
//	go build -ldflags "-X github.com/kimberlythegeek/accessibility-dashboard/internal/version.Value=1.2.0"
var Value = "0.3.0"
