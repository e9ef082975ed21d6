package domain

// Color is a Discord embed accent color in RGB integer form.
type Color uint32

const (
	// ColorRed marks firing alerts.
	ColorRed Color = 0x992D22
	// ColorGreen marks resolved alerts.
	ColorGreen Color = 0x2ECC71
	// ColorGrey marks alerts in an unknown state.
	ColorGrey Color = 0x95A5A6
)

// ColorFor maps an alert status to its embed color.
func ColorFor(s Status) Color {
	switch s {
	case StatusFiring:
		return ColorRed
	case StatusResolved:
		return ColorGreen
	default:
		return ColorGrey
	}
}

// MaxEmbedFields is the hard limit Discord enforces on fields per embed.
// Groups with more alerts spill into additional embeds.
const MaxEmbedFields = 25

// EmbedField is a single name/value row inside a Discord embed.
type EmbedField struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Embed is a Discord rich embed.
type Embed struct {
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Color       Color        `json:"color"`
	Fields      []EmbedField `json:"fields"`
}

// Message is the payload posted to a Discord webhook.
type Message struct {
	Content string  `json:"content,omitempty"`
	Embeds  []Embed `json:"embeds"`
}
