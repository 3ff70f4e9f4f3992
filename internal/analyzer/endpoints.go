package analyzer

const apiBaseURL = "https://generativelanguage.googleapis.com/v1beta/models"

// EndpointDescriptor names one candidate model endpoint for the analysis call.
type EndpointDescriptor struct {
	Name    string
	Address string
}

// DefaultEndpoints returns the static endpoint registry in priority order:
// most capable and most likely available first, oldest last. The ordering
// maximizes success probability without a capability-discovery round trip.
func DefaultEndpoints() []EndpointDescriptor {
	models := []string{
		"gemini-exp-1206",
		"gemini-2.0-flash-exp",
		"gemini-1.5-flash",
		"gemini-1.5-pro",
	}
	endpoints := make([]EndpointDescriptor, len(models))
	for i, m := range models {
		endpoints[i] = EndpointDescriptor{
			Name:    m,
			Address: apiBaseURL + "/" + m + ":generateContent",
		}
	}
	return endpoints
}
