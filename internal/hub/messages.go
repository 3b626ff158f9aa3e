package hub

// Inbound message types accepted over an open push channel.
const (
	msgSubscribeToArea   = "SUBSCRIBE_TO_AREA"
	msgSubscribeToLeague = "SUBSCRIBE_TO_LEAGUE"
	msgMarkRead          = "MARK_READ"
)

// inboundMessage is the tagged payload a client sends over the channel.
// Fields are a union across message types; Type selects which are read.
type inboundMessage struct {
	Type string `json:"type"`

	// SUBSCRIBE_TO_AREA
	Latitude  float64 `json:"latitude,omitempty"`
	Longitude float64 `json:"longitude,omitempty"`
	Radius    float64 `json:"radius,omitempty"`

	// SUBSCRIBE_TO_LEAGUE
	League   string `json:"league,omitempty"`
	AgeGroup string `json:"ageGroup,omitempty"`

	// MARK_READ
	NotificationID string `json:"notificationId,omitempty"`
}

// AreaFilter is session-scoped subscription state: it lives on the
// connection and dies with it.
type AreaFilter struct {
	Latitude  float64
	Longitude float64
	Radius    float64
}

type LeagueFilter struct {
	League   string
	AgeGroup string
}
