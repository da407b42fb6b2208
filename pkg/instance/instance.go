package instance

import "os"

// GetID returns the serving instance identifier or a default value. Deployed
// environments set INSTANCE_ID per replica so log lines stay attributable.
func GetID() string {
	if id := os.Getenv("INSTANCE_ID"); id != "" {
		return id
	}
	return "storefront-0"
}
